package interfaces

import (
	"context"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=auth_interfaces.go -destination=mocks/mock_auth.go -package=mock_interfaces

type TokenClaims struct {
	UserID int64
	Role   entities.Role
}

type ITokenIssuer interface {
	Issue(u entities.User) (string, error)
	Parse(token string) (TokenClaims, error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type IMailer interface {
	SendVerification(ctx context.Context, to, name, link string) error
}
