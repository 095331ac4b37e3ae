package repository

import (
	"context"
	"errors"
	"mime/multipart"
)

var (
	ErrImageTooLarge    = errors.New("image too large")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// ImageStore persists uploaded product images and returns their public URL.
type ImageStore interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, url string) error
}
