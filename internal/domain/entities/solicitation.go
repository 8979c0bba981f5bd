package entities

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Progress is the lifecycle state of a solicitation.
type Progress string

const (
	ProgressCreated    Progress = "created"
	ProgressAccepted   Progress = "accepted"
	ProgressInProgress Progress = "inProgress"
	ProgressFinished   Progress = "finished"
	ProgressCancelled  Progress = "cancelled"
	ProgressExpired    Progress = "expired"
)

// IsTerminal reports whether no further mutation is permitted.
func (p Progress) IsTerminal() bool {
	switch p {
	case ProgressFinished, ProgressCancelled, ProgressExpired:
		return true
	}
	return false
}

// SolicitationType is the kind of waste to be collected. Immutable after creation.
type SolicitationType string

const (
	SolicitationTypeRubble     SolicitationType = "rubble"
	SolicitationTypeRecycle    SolicitationType = "recycle"
	SolicitationTypeOrganic    SolicitationType = "organic"
	SolicitationTypeBiohazard  SolicitationType = "biohazard"
	SolicitationTypeElectronic SolicitationType = "electronic"
	SolicitationTypeOther      SolicitationType = "other"
)

var knownSolicitationTypes = []SolicitationType{
	SolicitationTypeRubble,
	SolicitationTypeRecycle,
	SolicitationTypeOrganic,
	SolicitationTypeBiohazard,
	SolicitationTypeElectronic,
	SolicitationTypeOther,
}

func (t SolicitationType) Valid() bool {
	return slices.Contains(knownSolicitationTypes, t)
}

const (
	MaxDescriptionLength = 3000
	ExpirationWindow     = 24 * time.Hour
)

// ImageRef points to an attachment stored by the media storage.
type ImageRef struct {
	Path          string `json:"path"`
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
	ContentType   string `json:"content_type"`
}

// Solicitation is one collection request and its negotiation state.
//
// Invariants kept by the solicitation use case:
//   - FinalValue is set iff Consent contains both AuthorID and *EmployeeID.
//   - EmployeeID is set iff Progress is accepted, inProgress or finished.
//   - Consent is a subset of {AuthorID, EmployeeID}.
//
// Version is the optimistic-concurrency token; every persisted write increments it.
type Solicitation struct {
	ID             int64            `json:"id"`
	AuthorID       int64            `json:"author_id"`
	EmployeeID     *int64           `json:"employee_id,omitempty"`
	Progress       Progress         `json:"progress"`
	Accepted       bool             `json:"accepted"`
	Type           SolicitationType `json:"type"`
	Address        Address          `json:"address"`
	Description    string           `json:"description"`
	SuggestedValue decimal.Decimal  `json:"suggested_value"`
	FinalValue     *decimal.Decimal `json:"final_value,omitempty"`
	Consent        []int64          `json:"consent"`
	DesiredDate    time.Time        `json:"desired_date"`
	Expiration     time.Time        `json:"expiration"`
	CreatedAt      time.Time        `json:"created_at"`
	FinishedAt     *time.Time       `json:"finished_at,omitempty"`
	Image          *ImageRef        `json:"image,omitempty"`
	Version        int64            `json:"-"`
}

func (s Solicitation) IsAuthor(userID int64) bool {
	return s.AuthorID == userID
}

func (s Solicitation) IsAssignedEmployee(userID int64) bool {
	return s.EmployeeID != nil && *s.EmployeeID == userID
}

// IsParty reports whether userID takes part in the value negotiation.
func (s Solicitation) IsParty(userID int64) bool {
	return s.IsAuthor(userID) || s.IsAssignedEmployee(userID)
}

func (s Solicitation) HasConsented(userID int64) bool {
	return slices.Contains(s.Consent, userID)
}

// ConsentComplete reports whether both parties agreed on the current suggested value.
func (s Solicitation) ConsentComplete() bool {
	return s.EmployeeID != nil && s.HasConsented(s.AuthorID) && s.HasConsented(*s.EmployeeID)
}

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
