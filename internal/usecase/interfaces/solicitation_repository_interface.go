package interfaces

import (
	"context"
	"time"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=solicitation_repository_interface.go -destination=mocks/mock_solicitation_repository.go -package=mock_interfaces

// SolicitationFilter narrows List. A nil AuthorID lists every solicitation.
type SolicitationFilter struct {
	AuthorID *int64
}

// ISolicitationRepository abstracts persistence for Solicitation.
//
// Lookups return the zero value (ID == 0) when nothing matches.
// Update is a conditional write: it stores s with Version+1 only when the
// persisted version still equals s.Version, and returns the zero value otherwise.
type ISolicitationRepository interface {
	Create(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error)
	GetByID(ctx context.Context, id int64) (entities.Solicitation, error)
	Update(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error)
	FindOpenByAddress(ctx context.Context, addressKey string) (entities.Solicitation, error)
	List(ctx context.Context, filter SolicitationFilter, offset, limit int) ([]entities.Solicitation, error)
	ListExpirable(ctx context.Context, now time.Time) ([]entities.Solicitation, error)
}
