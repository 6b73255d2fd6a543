// Package errors provides error types and handling for bucket administration
// operations. It wraps filesystem and AWS SDK errors with context about the
// operation that failed.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a failed administration operation with context about what
// was being done and which bucket/key was involved.
type Error struct {
	// Op is the operation that failed (e.g., "uploadFile", "clearPrefix")
	Op string

	// Bucket is the bucket name (if applicable)
	Bucket string

	// Key is the object key or local path (if applicable)
	Key string

	// Err is the underlying error from the AWS SDK or the filesystem
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("admin.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("admin.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("admin.%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("admin.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with bucket and key context.
func NewObjectError(op, bucket, key string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}

// Sentinel errors for common failures. Use with errors.Is().
var (
	// ErrNotFound indicates a local file or directory does not exist
	ErrNotFound = errors.New("admin: not found")

	// ErrTransfer indicates a remote read/write/copy/delete failed
	ErrTransfer = errors.New("admin: transfer failed")

	// ErrInvalidInput indicates the provided input is invalid
	ErrInvalidInput = errors.New("admin: invalid input")

	// ErrInvalidBucketName indicates the bucket name is invalid
	ErrInvalidBucketName = errors.New("admin: invalid bucket name")

	// ErrInvalidObjectKey indicates the object key is invalid
	ErrInvalidObjectKey = errors.New("admin: invalid object key")
)

// IsNotFound checks if an error indicates a missing local file or directory.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransfer checks if an error indicates a failed remote operation.
func IsTransfer(err error) bool {
	return errors.Is(err, ErrTransfer)
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
