package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidValue       = errors.New("value must be a number")
	ErrInvalidDesiredDate = errors.New("desired_date must be an RFC 3339 timestamp or a YYYY-MM-DD date")
)

// CreateSolicitationRequest is accepted both as JSON and as multipart form
// fields; the optional image is read from the "image" form file.
type CreateSolicitationRequest struct {
	Type           string      `json:"type" form:"type" binding:"required"`
	AddressIndex   *int        `json:"address_index" form:"address_index" binding:"required"`
	Description    string      `json:"description" form:"description" binding:"required"`
	SuggestedValue json.Number `json:"suggested_value" form:"suggested_value" binding:"required"`
	DesiredDate    string      `json:"desired_date" form:"desired_date" binding:"required"`
}

// ToInput converts the payload. Range checks stay in the use case.
func (r CreateSolicitationRequest) ToInput(authorID int64) (usecase.CreateSolicitationInput, error) {
	value, err := parseDecimal(r.SuggestedValue)
	if err != nil {
		return usecase.CreateSolicitationInput{}, err
	}
	desired, err := parseDesiredDate(r.DesiredDate)
	if err != nil {
		return usecase.CreateSolicitationInput{}, err
	}
	return usecase.CreateSolicitationInput{
		AuthorID:       authorID,
		Type:           entities.SolicitationType(strings.TrimSpace(r.Type)),
		AddressIndex:   r.AddressIndex,
		Description:    r.Description,
		SuggestedValue: &value,
		DesiredDate:    &desired,
	}, nil
}

type SolicitationIDRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
}

type SuggestValueRequest struct {
	ID    int64       `json:"id" binding:"required,gt=0"`
	Value json.Number `json:"value" binding:"required"`
}

func (r SuggestValueRequest) ParsedValue() (decimal.Decimal, error) {
	return parseDecimal(r.Value)
}

// ListQuery defaults to page 1 with 5 items.
type ListQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=5"`
}

func parseDecimal(n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(n.String()))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidValue
	}
	return d, nil
}

func parseDesiredDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDesiredDate
}
