package main

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound        = errors.New("no such file or directory")
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	ErrDirectoryUnreadable = errors.New("permission denied")
)

// PathError records an error and the operation and path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
