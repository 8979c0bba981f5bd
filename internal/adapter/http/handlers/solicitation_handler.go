package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"coletaverde/internal/adapter/http/dto/request"
	"coletaverde/internal/adapter/http/dto/response"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
)

// maxImageBytes bounds how much of an upload is read; the media storage
// enforces the real limit.
const maxImageBytes = 5<<20 + 1

// SolicitationHandler exposes the solicitation engine.
type SolicitationHandler struct {
	usecase usecase.ISolicitationUseCase
}

func NewSolicitationHandler(uc usecase.ISolicitationUseCase) *SolicitationHandler {
	return &SolicitationHandler{usecase: uc}
}

// Create accepts JSON, or multipart/form-data when an image is attached.
//
// @Summary  Create a collection solicitation
// @Tags     solicitation
// @Accept   json,mpfd
// @Produce  json
// @Security Bearer
// @Param    body body request.CreateSolicitationRequest true "Solicitation"
// @Success  201 {object} response.SolicitationResponse
// @Failure  400 {object} pkg.Envelope
// @Failure  403 {object} pkg.Envelope
// @Router   /solicitation/create [post]
func (h *SolicitationHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.CreateSolicitationRequest
	var image *usecase.ImageUpload
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&payload); err != nil {
			respondBindingError(c, err)
			return
		}
		fh, err := c.FormFile("image")
		if err != nil && err != http.ErrMissingFile {
			respondBadRequest(c, "Invalid image upload")
			return
		}
		if fh != nil {
			image, err = readUpload(fh)
			if err != nil {
				respondBadRequest(c, "Invalid image upload")
				return
			}
		}
	} else if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	in, err := payload.ToInput(user.ID)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	in.Image = image

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(http.StatusCreated, response.FromSolicitation(created)))
}

// @Summary  Accept a solicitation as the collecting employee
// @Tags     solicitation
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.SolicitationIDRequest true "Solicitation id"
// @Success  200 {object} response.SolicitationResponse
// @Failure  400 {object} pkg.Envelope
// @Failure  404 {object} pkg.Envelope
// @Router   /solicitation/accept [put]
func (h *SolicitationHandler) Accept(c *gin.Context) {
	var payload request.SolicitationIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	user, _ := middleware.CurrentUser(c)

	s, err := h.usecase.Accept(c.Request.Context(), payload.ID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

// @Summary  Suggest a new value and reset consent
// @Tags     solicitation
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.SuggestValueRequest true "Suggestion"
// @Success  200 {object} response.SolicitationResponse
// @Failure  400 {object} pkg.Envelope
// @Router   /solicitation/value [put]
func (h *SolicitationHandler) SuggestValue(c *gin.Context) {
	var payload request.SuggestValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	value, err := payload.ParsedValue()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	user, _ := middleware.CurrentUser(c)

	s, err := h.usecase.SuggestNewValue(c.Request.Context(), payload.ID, user.ID, value)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

// @Summary  Consent to the current suggested value
// @Tags     solicitation
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.SolicitationIDRequest true "Solicitation id"
// @Success  200 {object} response.SolicitationResponse
// @Failure  400 {object} pkg.Envelope
// @Router   /solicitation/consent [put]
func (h *SolicitationHandler) Consent(c *gin.Context) {
	var payload request.SolicitationIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	user, _ := middleware.CurrentUser(c)

	s, err := h.usecase.ConsentFinalValue(c.Request.Context(), payload.ID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

func (h *SolicitationHandler) Cancel(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	s, err := h.usecase.Cancel(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

func (h *SolicitationHandler) Finish(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	s, err := h.usecase.Finish(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

func (h *SolicitationHandler) GetByID(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	s, err := h.usecase.Get(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

func (h *SolicitationHandler) GetMineByID(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	s, err := h.usecase.GetMine(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitation(s))
}

// List serves /all: employees and admins see every solicitation, others only
// their own.
func (h *SolicitationHandler) List(c *gin.Context) {
	h.list(c, usecase.ListScopeAll)
}

func (h *SolicitationHandler) ListMine(c *gin.Context) {
	h.list(c, usecase.ListScopeMine)
}

func (h *SolicitationHandler) list(c *gin.Context, scope usecase.ListScope) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, "Invalid query number")
		return
	}

	items, err := h.usecase.List(c.Request.Context(), middleware.CurrentActor(c), scope, q.Page, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromSolicitations(items))
}

func readUpload(fh *multipart.FileHeader) (*usecase.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, err
	}
	return &usecase.ImageUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
