package entities

import (
	"slices"
	"time"
)

// Role gates what an account can do.
type Role string

const (
	RoleUser       Role = "user"
	RoleEnterprise Role = "enterprise"
	RoleEmployee   Role = "employee"
	RoleAdmin      Role = "admin"
)

func (r Role) In(roles ...Role) bool {
	return slices.Contains(roles, r)
}

// Address is a normalized postal address resolved from a CEP lookup.
// Solicitations copy it by value at creation time.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Unit         string `json:"unit,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Key identifies the collection point; at most one open solicitation may exist per key.
func (a Address) Key() string {
	return a.CEP + "#" + a.Unit
}

type User struct {
	ID                int64
	Name              string
	Email             string
	PasswordHash      string
	Role              Role
	Description       string
	CPF               string
	CNPJ              string
	Phone             string
	Addresses         []Address
	EmailVerified     bool
	VerificationToken string
	CreatedAt         time.Time
}
