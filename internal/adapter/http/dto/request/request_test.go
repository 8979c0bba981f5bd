package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coletaverde/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestParseMPPayload(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "empty body", raw: "  ", want: "{}"},
		{name: "unwrapped body", raw: `{"payment_method_id":"pix"}`, want: `{"payment_method_id":"pix"}`},
		{name: "wrapped body", raw: `{"mp_payload":{"token":"abc"}}`, want: `{"token":"abc"}`},
		{name: "wrapped null", raw: `{"mp_payload":null}`, wantErr: ErrEmptyMPPayload},
		{name: "array body", raw: `[1,2]`, want: `[1,2]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMPPayload([]byte(tc.raw))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseMPPayload([]byte("{")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCreateSolicitationRequest_ToInput(t *testing.T) {
	idx := 2
	base := CreateSolicitationRequest{
		Type:           " recycle ",
		AddressIndex:   &idx,
		Description:    "garrafas",
		SuggestedValue: json.Number("35.5"),
		DesiredDate:    "2030-05-01",
	}

	t.Run("date only", func(t *testing.T) {
		in, err := base.ToInput(9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.AuthorID != 9 || in.Type != entities.SolicitationTypeRecycle || *in.AddressIndex != 2 {
			t.Fatalf("unexpected input %+v", in)
		}
		if !in.SuggestedValue.Equal(decimal.RequireFromString("35.5")) {
			t.Fatalf("unexpected value %s", in.SuggestedValue)
		}
		if !in.DesiredDate.Equal(time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date %s", in.DesiredDate)
		}
	})

	t.Run("rfc3339 with offset is normalized to utc", func(t *testing.T) {
		r := base
		r.DesiredDate = "2030-05-01T09:00:00-03:00"
		in, err := r.ToInput(9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.DesiredDate.Location() != time.UTC || in.DesiredDate.Hour() != 12 {
			t.Fatalf("unexpected date %s", in.DesiredDate)
		}
	})

	t.Run("bad value", func(t *testing.T) {
		r := base
		r.SuggestedValue = json.Number("dez")
		if _, err := r.ToInput(9); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r := base
		r.DesiredDate = "01/05/2030"
		if _, err := r.ToInput(9); !errors.Is(err, ErrInvalidDesiredDate) {
			t.Fatalf("expected ErrInvalidDesiredDate, got %v", err)
		}
	})
}

func TestSuggestValueRequest_ParsedValue(t *testing.T) {
	v, err := SuggestValueRequest{ID: 1, Value: json.Number("10.005")}.ParsedValue()
	if err != nil || !v.Equal(decimal.RequireFromString("10.005")) {
		t.Fatalf("unexpected %s %v", v, err)
	}
}

func TestAccountRequests_ToInput(t *testing.T) {
	name := "novo"
	upd := UpdateUserRequest{Name: &name}.ToInput()
	if upd.Name != &name || upd.Password != nil {
		t.Fatalf("unexpected update input %+v", upd)
	}

	reg := RegisterRequest{Name: "a", Email: "a@test.com", Password: "12345678", AccountType: "user", Phone: "11987654321"}.ToInput()
	if reg.AccountType != "user" || reg.Phone != "11987654321" {
		t.Fatalf("unexpected register input %+v", reg)
	}

	addr := CreateAddressRequest{CEP: "01001-000", Number: "10", Unit: "apto 3"}.ToInput()
	if addr.CEP != "01001-000" || addr.Unit != "apto 3" {
		t.Fatalf("unexpected address input %+v", addr)
	}
}
