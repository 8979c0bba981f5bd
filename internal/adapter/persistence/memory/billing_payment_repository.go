package memory

import (
	"context"
	"sort"
	"sync"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
)

type BillingPaymentRepository struct {
	mu    sync.RWMutex
	items map[string]entities.BillingPayment
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository() *BillingPaymentRepository {
	return &BillingPaymentRepository{items: map[string]entities.BillingPayment{}}
}

func (r *BillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *BillingPaymentRepository) ListBySolicitationID(_ context.Context, solicitationID int64) ([]entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.BillingPayment{}
	for _, p := range r.items {
		if p.SolicitationID == solicitationID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
