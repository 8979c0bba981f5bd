package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
)

// SolicitationRepository keeps solicitations in process memory. Records are
// stored and returned by value, so callers never share slices with the store.
type SolicitationRepository struct {
	mu    sync.RWMutex
	items map[int64]entities.Solicitation
}

var _ interfaces.ISolicitationRepository = (*SolicitationRepository)(nil)

func NewSolicitationRepository() *SolicitationRepository {
	return &SolicitationRepository{items: map[int64]entities.Solicitation{}}
}

func (r *SolicitationRepository) Create(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[s.ID]; exists {
		return entities.Solicitation{}, nil
	}
	s.Version = 1
	r.items[s.ID] = cloneSolicitation(s)
	return cloneSolicitation(s), nil
}

func (r *SolicitationRepository) GetByID(_ context.Context, id int64) (entities.Solicitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return entities.Solicitation{}, nil
	}
	return cloneSolicitation(s), nil
}

func (r *SolicitationRepository) Update(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[s.ID]
	if !ok || current.Version != s.Version {
		return entities.Solicitation{}, nil
	}
	s.Version++
	r.items[s.ID] = cloneSolicitation(s)
	return cloneSolicitation(s), nil
}

func (r *SolicitationRepository) FindOpenByAddress(_ context.Context, addressKey string) (entities.Solicitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sorted() {
		if s.Address.Key() == addressKey && !s.Progress.IsTerminal() {
			return cloneSolicitation(s), nil
		}
	}
	return entities.Solicitation{}, nil
}

func (r *SolicitationRepository) List(_ context.Context, filter interfaces.SolicitationFilter, offset, limit int) ([]entities.Solicitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Solicitation{}
	skipped := 0
	for _, s := range r.sorted() {
		if filter.AuthorID != nil && s.AuthorID != *filter.AuthorID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, cloneSolicitation(s))
	}
	return out, nil
}

func (r *SolicitationRepository) ListExpirable(_ context.Context, now time.Time) ([]entities.Solicitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Solicitation{}
	for _, s := range r.sorted() {
		if s.Progress == entities.ProgressCreated && s.Expiration.Before(now) {
			out = append(out, cloneSolicitation(s))
		}
	}
	return out, nil
}

func (r *SolicitationRepository) sorted() []entities.Solicitation {
	out := make([]entities.Solicitation, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneSolicitation(s entities.Solicitation) entities.Solicitation {
	s.Consent = append([]int64{}, s.Consent...)
	if s.EmployeeID != nil {
		id := *s.EmployeeID
		s.EmployeeID = &id
	}
	if s.FinalValue != nil {
		v := *s.FinalValue
		s.FinalValue = &v
	}
	if s.FinishedAt != nil {
		t := *s.FinishedAt
		s.FinishedAt = &t
	}
	if s.Image != nil {
		img := *s.Image
		s.Image = &img
	}
	return s
}
