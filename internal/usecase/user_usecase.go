package usecase

import (
	"context"
	"strings"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
	"coletaverde/pkg"
)

//go:generate mockgen -source=user_usecase.go -destination=../adapter/http/handlers/mocks/mock_user_usecase.go -package=mocks

var (
	ErrInvalidUserID   = newError(KindValidation, "Invalid user id")
	ErrNothingToUpdate = newError(KindValidation, "Couldn't update user data")
)

type UpdateUserInput struct {
	Name        *string
	Description *string
	Password    *string
	Phone       *string
}

type IUserUseCase interface {
	Me(ctx context.Context, userID int64) (entities.User, error)
	UpdateMe(ctx context.Context, userID int64, in UpdateUserInput) (entities.User, error)
	ByID(ctx context.Context, id int64) (entities.User, error)
}

type UserUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

func (u *UserUseCase) Me(ctx context.Context, userID int64) (entities.User, error) {
	return u.ByID(ctx, userID)
}

func (u *UserUseCase) UpdateMe(ctx context.Context, userID int64, in UpdateUserInput) (entities.User, error) {
	user, err := u.ByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	changed := false
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if !namePattern.MatchString(name) {
			return entities.User{}, ErrInvalidName
		}
		if name != user.Name {
			other, err := u.users.GetByName(ctx, name)
			if err != nil {
				return entities.User{}, err
			}
			if other.ID != 0 {
				return entities.User{}, ErrUserAlreadyExists
			}
			user.Name = name
			changed = true
		}
	}
	if in.Description != nil {
		user.Description = strings.TrimSpace(*in.Description)
		changed = true
	}
	if in.Password != nil {
		if n := len(*in.Password); n < 8 || n > 20 {
			return entities.User{}, ErrInvalidPasswordSize
		}
		hash, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = hash
		changed = true
	}
	if in.Phone != nil {
		phone, err := pkg.NormalizePhoneNumber(*in.Phone, pkg.DefaultPhoneRegion)
		if err != nil {
			return entities.User{}, ErrInvalidPhone
		}
		user.Phone = phone
		changed = true
	}
	if !changed {
		return entities.User{}, ErrNothingToUpdate
	}

	return u.users.Update(ctx, user)
}

func (u *UserUseCase) ByID(ctx context.Context, id int64) (entities.User, error) {
	if id <= 0 {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
