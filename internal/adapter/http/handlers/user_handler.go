package handlers

import (
	"strconv"

	"coletaverde/internal/adapter/http/dto/request"
	"coletaverde/internal/adapter/http/dto/response"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users     usecase.IUserUseCase
	addresses usecase.IAddressUseCase
}

func NewUserHandler(users usecase.IUserUseCase, addresses usecase.IAddressUseCase) *UserHandler {
	return &UserHandler{users: users, addresses: addresses}
}

func (h *UserHandler) Me(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)
	user, err := h.users.Me(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromUser(user, true))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	current, _ := middleware.CurrentUser(c)

	user, err := h.users.UpdateMe(c.Request.Context(), current.ID, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromUser(user, true))
}

// ByID hides documents and addresses unless the viewer is an admin.
func (h *UserHandler) ByID(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	user, err := h.users.ByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, response.FromUser(user, middleware.CurrentActor(c).Role == entities.RoleAdmin))
}

func (h *UserHandler) CreateAddress(c *gin.Context) {
	var payload request.CreateAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	current, _ := middleware.CurrentUser(c)

	addr, err := h.addresses.Create(c.Request.Context(), current.ID, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, addr)
}

func (h *UserHandler) ListAddresses(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)
	addrs, err := h.addresses.All(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, addrs)
}

func (h *UserHandler) AddressByIndex(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	current, _ := middleware.CurrentUser(c)

	addr, err := h.addresses.ByIndex(c.Request.Context(), current.ID, index)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, addr)
}

func (h *UserHandler) DeleteAddress(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	current, _ := middleware.CurrentUser(c)

	if err := h.addresses.Delete(c.Request.Context(), current.ID, index); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func indexParam(c *gin.Context) (int, bool) {
	raw := c.Param("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "'"+raw+"' is not a number")
		return 0, false
	}
	return index, true
}
