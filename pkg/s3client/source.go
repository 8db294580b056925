package s3client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ParseURL splits an s3://bucket/prefix target into bucket and prefix
func ParseURL(raw string) (bucket, prefix string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%w: scheme must be s3, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("%w: missing bucket in %q", ErrInvalidURL, raw)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

// IsS3URL reports whether target names an S3 location
func IsS3URL(target string) bool {
	return strings.HasPrefix(strings.ToLower(target), "s3://")
}

// Source lists and opens the objects under a bucket prefix
type Source struct {
	store  ObjectStore
	prefix string
}

// NewSource creates a source over the objects under prefix
func NewSource(store ObjectStore, prefix string) *Source {
	return &Source{
		store:  store,
		prefix: prefix,
	}
}

// Name returns the s3:// location of the source
func (s *Source) Name() string {
	return "s3://" + s.store.GetBucketName() + "/" + s.prefix
}

// List returns every object key under the prefix, skipping directory markers
func (s *Source) List(ctx context.Context) ([]string, error) {
	objects, err := s.store.ListObjects(ctx, s.prefix)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(objects))
	for _, object := range objects {
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}

// Open opens an object listed by List
func (s *Source) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.store.GetObject(ctx, key)
}

// Path returns the s3:// URL of an object
func (s *Source) Path(key string) string {
	return "s3://" + s.store.GetBucketName() + "/" + key
}
