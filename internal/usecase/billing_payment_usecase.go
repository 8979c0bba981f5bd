package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=billing_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_billing_payment_usecase.go -package=mocks

var (
	ErrBillingPaymentNotFound         = newError(KindNotFound, "Billing payment not found")
	ErrInvalidMPPayload               = newError(KindValidation, "Invalid mercado pago payload")
	ErrFinalValueNotDefined           = newError(KindConflict, "Final value not defined yet")
	ErrSolicitationNotPayable         = newError(KindConflict, "Solicitation can't be paid in its current state")
	ErrPaymentNotApproved             = newError(KindConflict, "Payment was not approved")
	ErrPaymentInProcess               = newError(KindConflict, "A payment for this solicitation is still being processed")
	ErrPaymentNotApplied              = newError(KindConflict, "Payment approved but the solicitation couldn't be started, pay again to retry without a new charge")
	ErrPaymentGatewayBadRequest       = newError(KindValidation, "Payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = newError(KindValidation, "Payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = newError(KindValidation, "Payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// IBillingPaymentUseCase charges the author the agreed final value. An approved
// payment moves the solicitation to inProgress.
type IBillingPaymentUseCase interface {
	PayFinalValue(ctx context.Context, solicitationID, authorID int64, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListBySolicitation(ctx context.Context, actor entities.Actor, solicitationID int64) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo          interfaces.IBillingPaymentRepository
	solicitations ISolicitationUseCase
	gateway       interfaces.IPaymentGateway
	mockMode      bool
	logger        logrus.FieldLogger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	solicitations ISolicitationUseCase,
	gateway interfaces.IPaymentGateway,
	mockMode bool,
	logger logrus.FieldLogger,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:          repo,
		solicitations: solicitations,
		gateway:       gateway,
		mockMode:      mockMode,
		logger:        logger.WithFields(logrus.Fields{"module": "payment", "layer": "usecase"}),
	}
}

func (u *BillingPaymentUseCase) PayFinalValue(ctx context.Context, solicitationID, authorID int64, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log := u.logger.WithField("solicitation_id", solicitationID)
	log.WithField("payload_len", len(mpPayload)).Info("pay final value start")

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	s, err := u.solicitations.GetMine(ctx, entities.Actor{ID: authorID}, solicitationID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if s.FinalValue == nil {
		return entities.BillingPayment{}, ErrFinalValueNotDefined
	}
	if s.Progress != entities.ProgressAccepted {
		return entities.BillingPayment{}, ErrSolicitationNotPayable
	}
	amount, _ := s.FinalValue.Float64()

	// The final value stored on the solicitation is the only source of the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if !u.mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !u.mockMode && !hasPayer(reqMap) {
			log.Warn("missing or invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap["external_reference"] = fmt.Sprintf("%d", s.ID)
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Solicitation %d", s.ID)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else if !u.mockMode {
		log.WithError(err).Warn("payload is not a json object")
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}

	previous, err := u.repo.ListBySolicitationID(ctx, s.ID)
	if err != nil {
		log.WithError(err).Error("payment repository list failed")
		return entities.BillingPayment{}, err
	}
	for _, p := range previous {
		switch p.Status {
		case entities.PaymentStatusApproved:
			// Charged earlier but the solicitation never started; resume without charging again.
			log.WithField("payment_id", p.ID).Warn("approved payment found, resuming solicitation start")
			return u.startWork(ctx, log, p, authorID)
		case entities.PaymentStatusPending:
			log.WithField("payment_id", p.ID).Info("payment still pending")
			return entities.BillingPayment{}, ErrPaymentInProcess
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.WithError(err).Error("payment gateway failed")
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	log.WithFields(logrus.Fields{"provider_payment_id": providerPaymentID, "provider_status": providerStatus}).Info("payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("provider response unmarshal failed")
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.BillingPayment{
		ID:             providerPaymentID,
		SolicitationID: s.ID,
		AuthorID:       authorID,
		Amount:         *s.FinalValue,
		Date:           time.Now().UTC(),
		Status:         paymentStatusFromProvider(providerStatus),
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).WithField("payment_id", p.ID).Error("payment repository create failed")
		return entities.BillingPayment{}, err
	}

	if created.Status != entities.PaymentStatusApproved {
		log.WithField("status", created.Status).Info("payment not approved, solicitation unchanged")
		return created, nil
	}
	return u.startWork(ctx, log, created, authorID)
}

// startWork moves the paid solicitation to inProgress, retrying once on a
// concurrent write. On failure the stored payment is still returned so the
// caller knows the charge went through.
func (u *BillingPaymentUseCase) startWork(ctx context.Context, log logrus.FieldLogger, p entities.BillingPayment, authorID int64) (entities.BillingPayment, error) {
	log = log.WithField("payment_id", p.ID)
	_, err := u.solicitations.StartWork(ctx, p.SolicitationID, authorID)
	if errors.Is(err, ErrSolicitationModified) {
		_, err = u.solicitations.StartWork(ctx, p.SolicitationID, authorID)
	}
	if err != nil {
		log.WithError(err).Error("approved payment could not start solicitation")
		return p, ErrPaymentNotApplied
	}
	log.Info("pay final value success")
	return p, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, validationf("Invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

// ListBySolicitation is visible to the author, the assigned employee and admins.
func (u *BillingPaymentUseCase) ListBySolicitation(ctx context.Context, actor entities.Actor, solicitationID int64) ([]entities.BillingPayment, error) {
	s, err := u.solicitations.Get(ctx, actor, solicitationID)
	if err != nil {
		return nil, err
	}
	if !s.IsParty(actor.ID) && actor.Role != entities.RoleAdmin {
		return nil, ErrSolicitationNotFound
	}
	payments, err := u.repo.ListBySolicitationID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []entities.BillingPayment{}
	}
	return payments, nil
}
