package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, objectKey, contentType string, reader io.Reader, size int64) error
	PresignedDownloadURL(ctx context.Context, objectKey, fileName string, expiry time.Duration) (string, error)
	RemoveObject(ctx context.Context, objectKey string) error
}
