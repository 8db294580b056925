package s3client

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// ObjectStore defines the bucket operations a Source needs
type ObjectStore interface {
	ListObjects(ctx context.Context, prefix string) ([]minio.ObjectInfo, error)
	GetObject(ctx context.Context, objectKey string) (io.ReadCloser, error)
	GetBucketName() string
}

var _ ObjectStore = (*Client)(nil)
