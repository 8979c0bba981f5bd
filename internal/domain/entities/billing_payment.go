package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment records the author's payment of a solicitation's final value.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (solicitation_id-index): solicitation_id
//
// MPPayloadRaw keeps the provider response as received for audit.
type BillingPayment struct {
	ID             string
	SolicitationID int64
	AuthorID       int64
	Amount         decimal.Decimal
	Date           time.Time
	Status         PaymentStatus

	MPPayloadRaw json.RawMessage
	MPPayload    map[string]interface{}
}
