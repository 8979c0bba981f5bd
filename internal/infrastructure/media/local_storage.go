package media

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	MaxUploadSizeBytes = 5 << 20
	thumbnailWidth     = 200
)

// rejection is an upload error attributable to the client.
type rejection string

func (r rejection) Error() string { return string(r) }

func (r rejection) Is(target error) bool { return target == interfaces.ErrMediaRejected }

var (
	ErrUnsupportedImage error = rejection("only jpeg and png images are accepted")
	ErrImageTooLarge    error = rejection("file size exceeds 5MB limit")
	ErrInvalidImage     error = rejection("file is not a readable image")
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// LocalStorage writes attachments and their thumbnails under dir. The returned
// paths are relative to baseURL, which is where dir is served.
type LocalStorage struct {
	dir     string
	baseURL string
}

var _ interfaces.IMediaStorage = (*LocalStorage)(nil)

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(dir, "thumbnails"), 0o755); err != nil {
		return nil, errors.Wrap(err, "media: create uploads dir")
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStorage) SaveImage(ctx context.Context, fileName, contentType string, data []byte) (entities.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return entities.ImageRef{}, err
	}
	ext, ok := extensions[strings.ToLower(contentType)]
	if !ok {
		return entities.ImageRef{}, ErrUnsupportedImage
	}
	if len(data) > MaxUploadSizeBytes {
		return entities.ImageRef{}, ErrImageTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return entities.ImageRef{}, ErrInvalidImage
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return entities.ImageRef{}, errors.Wrapf(err, "media: write %s", fileName)
	}

	thumbnail := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		return entities.ImageRef{}, errors.Wrap(err, "media: encode thumbnail")
	}
	thumbName := strings.TrimSuffix(name, ext) + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, "thumbnails", thumbName), buf.Bytes(), 0o644); err != nil {
		return entities.ImageRef{}, errors.Wrap(err, "media: write thumbnail")
	}

	return entities.ImageRef{
		Path:          path.Join(s.baseURL, name),
		ThumbnailPath: path.Join(s.baseURL, "thumbnails", thumbName),
		ContentType:   strings.ToLower(contentType),
	}, nil
}

// DeleteImage removes an attachment and its thumbnail. Missing files are ignored.
func (s *LocalStorage) DeleteImage(ctx context.Context, ref entities.ImageRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range []string{ref.Path, ref.ThumbnailPath} {
		rel, ok := strings.CutPrefix(p, s.baseURL)
		rel = strings.TrimPrefix(rel, "/")
		if p == "" || !ok || rel == "" || strings.Contains(rel, "..") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "media: remove %s", rel)
		}
	}
	return nil
}
