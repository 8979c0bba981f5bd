package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"coletaverde/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   logrus.FieldLogger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the SDK client. In mock mode no token is needed
// and every payment is approved locally.
func NewMercadoPagoGateway(accessToken string, mockMode bool, logger logrus.FieldLogger) (*MercadoPagoGateway, error) {
	log := logger.WithFields(logrus.Fields{"module": "payment", "layer": "gateway"})
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: log, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.WithError(err).Error("failed creating sdk config")
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: log, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.WithField("payload_len", len(requestPayload)).Info("create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.WithError(err).Warn("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.WithError(err).Error("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.WithError(err).Error("response marshal failed")
		return "", "", nil, err
	}
	g.logger.WithFields(logrus.Fields{"provider_payment_id": resp.ID, "provider_status": resp.Status}).Info("create success")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.logger.WithField("provider_payment_id", id).Info("mock create success")
	return id, "approved", b, nil
}
