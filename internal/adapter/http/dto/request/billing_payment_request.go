package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// BillingPaymentCreateRequest wraps the Mercado Pago payment body. Clients may
// also send the Mercado Pago body unwrapped.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseMPPayload extracts the provider payload from a raw request body. An
// empty body yields "{}".
func ParseMPPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, wrapped := envelope["mp_payload"]; wrapped {
			var req BillingPaymentCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			trimmed := strings.TrimSpace(string(req.MPPayload))
			if trimmed == "" || trimmed == "null" {
				return nil, ErrEmptyMPPayload
			}
			return req.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}
