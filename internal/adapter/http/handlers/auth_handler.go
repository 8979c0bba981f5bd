package handlers

import (
	"net/http"

	"coletaverde/internal/adapter/http/dto/request"
	"coletaverde/internal/adapter/http/dto/response"
	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(http.StatusCreated, response.FromUser(user, true)))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.LoginResponse{Token: result.Token, User: response.FromUser(result.User, true)})
}

// Check only answers when the Authenticate middleware let the request through.
func (h *AuthHandler) Check(c *gin.Context) {
	respondOK(c, nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	user, err := h.usecase.VerifyEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromUser(user, false))
}
