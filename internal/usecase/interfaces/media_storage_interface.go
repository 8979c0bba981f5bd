package interfaces

import (
	"context"
	"errors"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=media_storage_interface.go -destination=mocks/mock_media_storage.go -package=mock_interfaces

// ErrMediaRejected is matched by every error caused by the uploaded file itself
// rather than by the storage.
var ErrMediaRejected = errors.New("media rejected")

type IMediaStorage interface {
	SaveImage(ctx context.Context, fileName, contentType string, data []byte) (entities.ImageRef, error)
	DeleteImage(ctx context.Context, ref entities.ImageRef) error
}
