package interfaces

import (
	"context"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier.go -package=mock_interfaces

// INotifier publishes events to per-user channels.
//
// Subscribe returns a channel of events and a cancel func that must be called
// to release the subscription.
type INotifier interface {
	Publish(ctx context.Context, userID int64, event entities.Event) error
	Subscribe(ctx context.Context, userID int64) (<-chan entities.Event, func(), error)
}
