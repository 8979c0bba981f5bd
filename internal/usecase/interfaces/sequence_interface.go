package interfaces

import "context"

//go:generate mockgen -source=sequence_interface.go -destination=mocks/mock_sequence.go -package=mock_interfaces

// ISequence hands out monotonically increasing ids per name. Implementations
// must be atomic at the store level.
type ISequence interface {
	Next(ctx context.Context, name string) (int64, error)
}
