package s3client

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrObjectNotFound     = errors.New("object not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidURL         = errors.New("invalid S3 URL")
)

// errorCode returns the S3 error code carried by err, or "" when err did not
// come from an S3 response
func errorCode(err error) string {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code
	}
	return ""
}

// IsNotFoundError reports whether err means a missing bucket or object
func IsNotFoundError(err error) bool {
	if errors.Is(err, ErrBucketNotFound) || errors.Is(err, ErrObjectNotFound) {
		return true
	}

	switch errorCode(err) {
	case "NoSuchBucket", "NoSuchKey":
		return true
	}
	return false
}

// IsAuthError reports whether err means the credentials were refused
func IsAuthError(err error) bool {
	if errors.Is(err, ErrInvalidCredentials) {
		return true
	}

	switch errorCode(err) {
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return true
	}
	return false
}

// FormatError renders S3 responses with their code
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return fmt.Sprintf("S3 error: %s (code: %s)", resp.Message, resp.Code)
	}
	return err.Error()
}
