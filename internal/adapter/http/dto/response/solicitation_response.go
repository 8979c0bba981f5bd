package response

import (
	"time"

	"coletaverde/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// SolicitationResponse is the public view of a solicitation; the concurrency
// version never leaves the server.
type SolicitationResponse struct {
	ID             int64                     `json:"id"`
	AuthorID       int64                     `json:"author_id"`
	EmployeeID     *int64                    `json:"employee_id,omitempty"`
	Progress       entities.Progress         `json:"progress"`
	Accepted       bool                      `json:"accepted"`
	Type           entities.SolicitationType `json:"type"`
	Address        entities.Address          `json:"address"`
	Description    string                    `json:"description"`
	SuggestedValue decimal.Decimal           `json:"suggested_value"`
	FinalValue     *decimal.Decimal          `json:"final_value,omitempty"`
	Consent        []int64                   `json:"consent"`
	DesiredDate    time.Time                 `json:"desired_date"`
	Expiration     time.Time                 `json:"expiration"`
	CreatedAt      time.Time                 `json:"created_at"`
	FinishedAt     *time.Time                `json:"finished_at,omitempty"`
	Image          *entities.ImageRef        `json:"image,omitempty"`
}

func FromSolicitation(s entities.Solicitation) SolicitationResponse {
	consent := s.Consent
	if consent == nil {
		consent = []int64{}
	}
	return SolicitationResponse{
		ID:             s.ID,
		AuthorID:       s.AuthorID,
		EmployeeID:     s.EmployeeID,
		Progress:       s.Progress,
		Accepted:       s.Accepted,
		Type:           s.Type,
		Address:        s.Address,
		Description:    s.Description,
		SuggestedValue: s.SuggestedValue,
		FinalValue:     s.FinalValue,
		Consent:        consent,
		DesiredDate:    s.DesiredDate,
		Expiration:     s.Expiration,
		CreatedAt:      s.CreatedAt,
		FinishedAt:     s.FinishedAt,
		Image:          s.Image,
	}
}

func FromSolicitations(items []entities.Solicitation) []SolicitationResponse {
	out := make([]SolicitationResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSolicitation(s))
	}
	return out
}
