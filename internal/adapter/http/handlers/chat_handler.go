package handlers

import (
	"net/http"

	"coletaverde/internal/adapter/http/dto/request"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	current, _ := middleware.CurrentUser(c)

	msg, err := h.usecase.Send(c.Request.Context(), current.ID, payload.To, payload.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(http.StatusCreated, msg))
}

func (h *ChatHandler) Fetch(c *gin.Context) {
	otherID, ok := int64Param(c, "userId")
	if !ok {
		return
	}
	current, _ := middleware.CurrentUser(c)

	messages, err := h.usecase.Fetch(c.Request.Context(), current.ID, otherID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, messages)
}
