package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=locker_interface.go -destination=mocks/mock_locker.go -package=mock_interfaces

// ILocker grants a best-effort exclusive lease across processes.
// ok is false when another holder owns the key.
type ILocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}
