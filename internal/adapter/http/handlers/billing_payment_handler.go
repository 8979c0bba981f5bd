package handlers

import (
	"net/http"

	"coletaverde/internal/adapter/http/dto/request"
	"coletaverde/internal/adapter/http/dto/response"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BillingPaymentHandler handles the author's payment of a solicitation's final value.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	logger   logrus.FieldLogger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, logger logrus.FieldLogger) *BillingPaymentHandler {
	return &BillingPaymentHandler{
		usecase:  uc,
		mockMode: mockMode,
		logger:   logger.WithFields(logrus.Fields{"module": "payment", "layer": "handler"}),
	}
}

// PayFinalValue charges the agreed final value of the solicitation in the path.
//
// @Summary  Pay the agreed final value of a solicitation
// @Tags     billing
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id   path int                                 true  "Solicitation id"
// @Param    body body request.BillingPaymentCreateRequest false "Mercado Pago payment body, optionally wrapped in mp_payload"
// @Success  201 {object} response.BillingPaymentResponse
// @Failure  400 {object} pkg.Envelope
// @Failure  401 {object} pkg.Envelope
// @Router   /billing/pay/{id} [post]
func (h *BillingPaymentHandler) PayFinalValue(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)
	log := h.logger.WithFields(logrus.Fields{"solicitation_id": id, "user_id": user.ID})
	log.Info("create start")

	raw, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "Invalid request")
		return
	}
	mpPayload, err := request.ParseMPPayload(raw)
	if err != nil {
		if !h.mockMode {
			log.WithError(err).Warn("invalid payload")
			respondBadRequest(c, "Invalid request")
			return
		}
		log.WithError(err).Info("payload invalid in mock mode; fallback to empty payload")
		mpPayload = []byte("{}")
	}

	created, err := h.usecase.PayFinalValue(c.Request.Context(), id, user.ID, mpPayload)
	if err != nil {
		log.WithError(err).Warn("create failed")
		respondError(c, err)
		return
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("create success")

	c.JSON(http.StatusCreated, pkg.OK(http.StatusCreated, response.FromBillingPayment(created)))
}

// ListBySolicitation returns every payment attempt of a solicitation, oldest first.
func (h *BillingPaymentHandler) ListBySolicitation(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	payments, err := h.usecase.ListBySolicitation(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromBillingPayments(payments))
}

func (h *BillingPaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	actor := middleware.CurrentActor(c)
	if p.AuthorID != actor.ID && actor.Role != entities.RoleAdmin {
		respondError(c, usecase.ErrBillingPaymentNotFound)
		return
	}
	respondOK(c, response.FromBillingPayment(p))
}
