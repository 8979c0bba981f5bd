package usecase

import (
	"context"
	"strings"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
)

//go:generate mockgen -source=address_usecase.go -destination=../adapter/http/handlers/mocks/mock_address_usecase.go -package=mocks

var (
	ErrInvalidCEP         = newError(KindValidation, "Invalid CEP")
	ErrMissingNumber      = newError(KindValidation, "Address number is required")
	ErrCEPNotFound        = newError(KindNotFound, "CEP not found")
	ErrAddressIndexAbsent = newError(KindNotFound, "Address not found")
	ErrDuplicateAddress   = newError(KindValidation, "Address already registered")
)

type CreateAddressInput struct {
	CEP    string
	Number string
	Unit   string
}

type IAddressUseCase interface {
	Create(ctx context.Context, userID int64, in CreateAddressInput) (entities.Address, error)
	All(ctx context.Context, userID int64) ([]entities.Address, error)
	ByIndex(ctx context.Context, userID int64, index int) (entities.Address, error)
	Delete(ctx context.Context, userID int64, index int) error
}

type AddressUseCase struct {
	users  interfaces.IUserRepository
	lookup interfaces.IAddressLookup
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(users interfaces.IUserRepository, lookup interfaces.IAddressLookup) *AddressUseCase {
	return &AddressUseCase{users: users, lookup: lookup}
}

// NormalizeCEP strips formatting and returns the 8-digit CEP, or "" when invalid.
func NormalizeCEP(cep string) string {
	digits := digitsOnly.ReplaceAllString(cep, "")
	if len(digits) != 8 {
		return ""
	}
	return digits
}

func (u *AddressUseCase) Create(ctx context.Context, userID int64, in CreateAddressInput) (entities.Address, error) {
	cep := NormalizeCEP(in.CEP)
	if cep == "" {
		return entities.Address{}, ErrInvalidCEP
	}
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return entities.Address{}, ErrMissingNumber
	}

	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.Address{}, err
	}

	resolved, found, err := u.lookup.Lookup(ctx, cep)
	if err != nil {
		return entities.Address{}, err
	}
	if !found {
		return entities.Address{}, ErrCEPNotFound
	}
	resolved.CEP = cep
	resolved.Number = number
	resolved.Unit = strings.TrimSpace(in.Unit)

	for _, a := range user.Addresses {
		if a.Key() == resolved.Key() && a.Number == resolved.Number {
			return entities.Address{}, ErrDuplicateAddress
		}
	}

	user.Addresses = append(user.Addresses, resolved)
	if _, err := u.users.Update(ctx, user); err != nil {
		return entities.Address{}, err
	}
	return resolved, nil
}

func (u *AddressUseCase) All(ctx context.Context, userID int64) ([]entities.Address, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Addresses == nil {
		return []entities.Address{}, nil
	}
	return user.Addresses, nil
}

func (u *AddressUseCase) ByIndex(ctx context.Context, userID int64, index int) (entities.Address, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.Address{}, err
	}
	if index < 0 || index >= len(user.Addresses) {
		return entities.Address{}, ErrAddressIndexAbsent
	}
	return user.Addresses[index], nil
}

// Delete removes the address at index. Solicitations keep their own copy, so
// existing requests are unaffected.
func (u *AddressUseCase) Delete(ctx context.Context, userID int64, index int) error {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(user.Addresses) {
		return ErrAddressIndexAbsent
	}
	addresses := make([]entities.Address, 0, len(user.Addresses)-1)
	addresses = append(addresses, user.Addresses[:index]...)
	addresses = append(addresses, user.Addresses[index+1:]...)
	user.Addresses = addresses
	_, err = u.users.Update(ctx, user)
	return err
}

func (u *AddressUseCase) loadUser(ctx context.Context, userID int64) (entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
