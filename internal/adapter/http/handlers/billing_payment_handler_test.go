package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coletaverde/internal/adapter/http/dto/response"
	"coletaverde/internal/adapter/http/handlers/mocks"
	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestBillingPaymentHandler_PayFinalValue(t *testing.T) {
	setup := func(t *testing.T, mockMode bool) (*mocks.MockIBillingPaymentUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, mockMode, nullLogger())
		r := newRouter(author)
		r.POST("/billing/pay/:id", h.PayFinalValue)
		return uc, r
	}

	t.Run("invalid payload", func(t *testing.T) {
		_, r := setup(t, false)
		w := doJSON(r, http.MethodPost, "/billing/pay/7", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		_, r := setup(t, false)
		w := doJSON(r, http.MethodPost, "/billing/pay/abc", "{}")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		uc, r := setup(t, false)
		uc.EXPECT().PayFinalValue(gomock.Any(), int64(7), author.ID, gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrFinalValueNotDefined)

		w := doJSON(r, http.MethodPost, "/billing/pay/7", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w, nil); env.Message != "Final value not defined yet" {
			t.Fatalf("unexpected message %q", env.Message)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		uc, r := setup(t, false)
		uc.EXPECT().PayFinalValue(gomock.Any(), int64(7), author.ID, gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		w := doJSON(r, http.MethodPost, "/billing/pay/7", `{}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload", func(t *testing.T) {
		uc, r := setup(t, false)
		uc.EXPECT().PayFinalValue(gomock.Any(), int64(7), author.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, _ int64, payload json.RawMessage) (entities.BillingPayment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.BillingPayment{
					ID: "pay-1", SolicitationID: 7, AuthorID: author.ID,
					Amount: decimal.NewFromInt(150), Date: time.Now().UTC(), Status: entities.PaymentStatusApproved,
				}, nil
			})

		w := doJSON(r, http.MethodPost, "/billing/pay/7", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.BillingPaymentResponse
		decodeEnvelope(t, w, &body)
		if body.ID != "pay-1" || body.Status != "approved" || body.SolicitationID != 7 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("empty mp_payload rejected", func(t *testing.T) {
		_, r := setup(t, false)
		w := doJSON(r, http.MethodPost, "/billing/pay/7", `{"mp_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mock mode falls back to empty payload", func(t *testing.T) {
		uc, r := setup(t, true)
		uc.EXPECT().PayFinalValue(gomock.Any(), int64(7), author.ID, json.RawMessage("{}")).
			Return(entities.BillingPayment{ID: "mock-1", Status: entities.PaymentStatusApproved}, nil)

		w := doJSON(r, http.MethodPost, "/billing/pay/7", "{")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		_, r := setup(t, false)
		req := httptest.NewRequest(http.MethodPost, "/billing/pay/7", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBillingPaymentHandler_Reads(t *testing.T) {
	t.Run("list by solicitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newRouter(employee)
		r.GET("/billing/payments/:id", NewBillingPaymentHandler(uc, false, nullLogger()).ListBySolicitation)

		uc.EXPECT().ListBySolicitation(gomock.Any(), entities.Actor{ID: employee.ID, Role: employee.Role}, int64(7)).
			Return([]entities.BillingPayment{{ID: "a"}, {ID: "b"}}, nil)

		w := doJSON(r, http.MethodGet, "/billing/payments/7", "")
		var body []response.BillingPaymentResponse
		decodeEnvelope(t, w, &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected %d %+v", w.Code, body)
		}
	})

	t.Run("get by id hides other authors' payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nullLogger())
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{ID: "pay-1", AuthorID: 99}, nil).Times(2)

		r := newRouter(author)
		r.GET("/billing/payment/:paymentId", h.GetByID)
		if w := doJSON(r, http.MethodGet, "/billing/payment/pay-1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		ra := newRouter(admin)
		ra.GET("/billing/payment/:paymentId", h.GetByID)
		if w := doJSON(ra, http.MethodGet, "/billing/payment/pay-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200 for admin, got %d", w.Code)
		}
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newRouter(author)
		r.GET("/billing/payments/:id", NewBillingPaymentHandler(uc, false, nullLogger()).ListBySolicitation)
		uc.EXPECT().ListBySolicitation(gomock.Any(), gomock.Any(), int64(7)).Return(nil, errors.New("dynamodb down"))

		w := doJSON(r, http.MethodGet, "/billing/payments/7", "")
		if w.Code != http.StatusInternalServerError || bytes.Contains(w.Body.Bytes(), []byte("dynamodb")) {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})
}
