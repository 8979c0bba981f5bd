package interfaces

import (
	"context"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/mock_user_repository.go -package=mock_interfaces

// IUserRepository is the user directory. Lookups return the zero value when missing.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id int64) (entities.User, error)
	GetByName(ctx context.Context, name string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByVerificationToken(ctx context.Context, token string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
}
