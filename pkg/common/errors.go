package common

import (
	"errors"
	"fmt"
)

// ErrFileUnreadable is matched by every FileError
var ErrFileUnreadable = errors.New("file unreadable")

// FileError reports a file that could not be opened or read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("File Error: %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrFileUnreadable
}

type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Configuration Error: %s", e.Message)
}

func NewFileError(path string, err error) error {
	return &FileError{Path: path, Err: err}
}

func NewConfigError(message string) error {
	return &ConfigError{Message: message}
}
