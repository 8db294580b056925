package s3client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockObjectStore is a mock ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) ListObjects(ctx context.Context, prefix string) ([]minio.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]minio.ObjectInfo), args.Error(1)
}

func (m *MockObjectStore) GetObject(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	args := m.Called(ctx, objectKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockObjectStore) GetBucketName() string {
	args := m.Called()
	return args.String(0)
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw            string
		bucket, prefix string
	}{
		{"s3://photos", "photos", ""},
		{"s3://photos/", "photos", ""},
		{"s3://photos/2016/holiday", "photos", "2016/holiday"},
		{"s3://photos/2016/", "photos", "2016/"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			bucket, prefix, err := ParseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.prefix, prefix)
		})
	}

	for _, raw := range []string{"https://photos/x", "s3:///x", "/local/dir"} {
		_, _, err := ParseURL(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestIsS3URL(t *testing.T) {
	assert.True(t, IsS3URL("s3://bucket/prefix"))
	assert.True(t, IsS3URL("S3://bucket"))
	assert.False(t, IsS3URL("/photos"))
	assert.False(t, IsS3URL("photos.zip"))
}

func TestSource(t *testing.T) {
	store := new(MockObjectStore)
	store.On("GetBucketName").Return("photos")
	store.On("ListObjects", mock.Anything, "2016/").Return([]minio.ObjectInfo{
		{Key: "2016/"},
		{Key: "2016/a.jpg"},
		{Key: "2016/sub/b.tiff"},
	}, nil)
	store.On("GetObject", mock.Anything, "2016/a.jpg").Return(io.NopCloser(strings.NewReader("jpeg")), nil)
	store.On("GetObject", mock.Anything, "2016/missing.jpg").Return(nil, ErrObjectNotFound)

	src := NewSource(store, "2016/")
	assert.Equal(t, "s3://photos/2016/", src.Name())

	keys, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2016/a.jpg", "2016/sub/b.tiff"}, keys)
	assert.Equal(t, "s3://photos/2016/a.jpg", src.Path("2016/a.jpg"))

	rc, err := src.Open(context.Background(), "2016/a.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	_, err = src.Open(context.Background(), "2016/missing.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	store.AssertExpectations(t)
}

func TestSource_ListError(t *testing.T) {
	store := new(MockObjectStore)
	store.On("ListObjects", mock.Anything, "").Return(nil, errors.New("network down"))

	_, err := NewSource(store, "").List(context.Background())
	assert.Error(t, err)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrObjectNotFound))
	assert.True(t, IsNotFoundError(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(errors.New("timeout")))
	assert.True(t, IsNotFoundError(fmt.Errorf("stat: %w", minio.ErrorResponse{Code: "NoSuchBucket"})))
	assert.False(t, IsNotFoundError(minio.ErrorResponse{Code: "AccessDenied"}))

	assert.True(t, IsAuthError(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.True(t, IsAuthError(ErrInvalidCredentials))
	assert.False(t, IsAuthError(errors.New("timeout")))
	assert.False(t, IsAuthError(nil))
	assert.True(t, IsAuthError(minio.ErrorResponse{Code: "SignatureDoesNotMatch"}))

	assert.Equal(t, "S3 error: denied (code: AccessDenied)",
		FormatError(minio.ErrorResponse{Code: "AccessDenied", Message: "denied"}))
	assert.Equal(t, "", FormatError(nil))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(context.Background(), Config{Bucket: "photos"})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}
