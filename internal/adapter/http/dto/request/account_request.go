package request

import "coletaverde/internal/usecase"

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	AccountType string `json:"account_type" binding:"required"`
	CNPJ        string `json:"cnpj"`
	Phone       string `json:"phone"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		AccountType: r.AccountType,
		CNPJ:        r.CNPJ,
		Phone:       r.Phone,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest only touches the fields present in the body.
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Password    *string `json:"password"`
	Phone       *string `json:"phone"`
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:        r.Name,
		Description: r.Description,
		Password:    r.Password,
		Phone:       r.Phone,
	}
}

type CreateAddressRequest struct {
	CEP    string `json:"cep" binding:"required"`
	Number string `json:"number" binding:"required"`
	Unit   string `json:"unit"`
}

func (r CreateAddressRequest) ToInput() usecase.CreateAddressInput {
	return usecase.CreateAddressInput{CEP: r.CEP, Number: r.Number, Unit: r.Unit}
}

type SendMessageRequest struct {
	To   int64  `json:"to" binding:"required,gt=0"`
	Text string `json:"text" binding:"required"`
}
