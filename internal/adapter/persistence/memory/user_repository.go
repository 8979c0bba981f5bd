package memory

import (
	"context"
	"strings"
	"sync"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
)

type UserRepository struct {
	mu    sync.RWMutex
	items map[int64]entities.User
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(seed ...entities.User) *UserRepository {
	r := &UserRepository{items: map[int64]entities.User{}}
	for _, u := range seed {
		r.items[u.ID] = cloneUser(u)
	}
	return r
}

// Create rejects duplicate ids, names and emails by returning the zero value.
func (r *UserRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[u.ID]; exists {
		return entities.User{}, nil
	}
	for _, existing := range r.items {
		if existing.Name == u.Name || strings.EqualFold(existing.Email, u.Email) {
			return entities.User{}, nil
		}
	}
	r.items[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneUser(r.items[id]), nil
}

func (r *UserRepository) GetByName(_ context.Context, name string) (entities.User, error) {
	return r.find(func(u entities.User) bool { return u.Name == name }), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	return r.find(func(u entities.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepository) GetByVerificationToken(_ context.Context, token string) (entities.User, error) {
	if token == "" {
		return entities.User{}, nil
	}
	return r.find(func(u entities.User) bool { return u.VerificationToken == token }), nil
}

func (r *UserRepository) Update(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok {
		return entities.User{}, nil
	}
	r.items[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *UserRepository) find(match func(entities.User) bool) entities.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if match(u) {
			return cloneUser(u)
		}
	}
	return entities.User{}
}

func cloneUser(u entities.User) entities.User {
	if u.Addresses != nil {
		u.Addresses = append([]entities.Address{}, u.Addresses...)
	}
	return u
}
