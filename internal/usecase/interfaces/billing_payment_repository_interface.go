package interfaces

import (
	"context"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=billing_payment_repository_interface.go -destination=mocks/mock_billing_payment_repository.go -package=mock_interfaces

// IBillingPaymentRepository abstracts persistence for BillingPayment.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListBySolicitationID(ctx context.Context, solicitationID int64) ([]entities.BillingPayment, error)
}
