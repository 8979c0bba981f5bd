package response

import (
	"time"

	"coletaverde/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BillingPaymentResponse struct {
	PaymentID      string          `json:"payment_id"`
	ID             string          `json:"id"`
	SolicitationID int64           `json:"solicitation_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"payment_date"`
	Date           time.Time       `json:"date"`
	Status         string          `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:      p.ID,
		ID:             p.ID,
		SolicitationID: p.SolicitationID,
		Amount:         p.Amount,
		PaymentDate:    p.Date,
		Date:           p.Date,
		Status:         string(p.Status),
		MPPayloadRaw:   string(p.MPPayloadRaw),
		MPPayload:      p.MPPayload,
	}
}

func FromBillingPayments(ps []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromBillingPayment(p))
	}
	return out
}
