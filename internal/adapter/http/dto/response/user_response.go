package response

import (
	"time"

	"coletaverde/internal/domain/entities"
)

// UserResponse never carries the password hash or the verification token.
// Documents and addresses are only filled for the owner or an admin.
type UserResponse struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Role          entities.Role      `json:"role"`
	Description   string             `json:"description,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	EmailVerified bool               `json:"email_verified"`
	CreatedAt     time.Time          `json:"created_at"`
	CPF           string             `json:"cpf,omitempty"`
	CNPJ          string             `json:"cnpj,omitempty"`
	Addresses     []entities.Address `json:"addresses,omitempty"`
}

// FromUser renders u; full adds documents and addresses.
func FromUser(u entities.User, full bool) UserResponse {
	res := UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Description:   u.Description,
		Phone:         u.Phone,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
	if full {
		res.CPF = u.CPF
		res.CNPJ = u.CNPJ
		res.Addresses = u.Addresses
	}
	return res
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
