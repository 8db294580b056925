package common

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileError(t *testing.T) {
	err := NewFileError("/missing.jpg", os.ErrNotExist)

	assert.ErrorIs(t, err, ErrFileUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/missing.jpg")

	var fileErr *FileError
	assert.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "/missing.jpg", fileErr.Path)
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("zoom out of range")
	assert.Equal(t, "Configuration Error: zoom out of range", err.Error())
}
