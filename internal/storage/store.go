// Package storage defines the byte-level key-value store the character
// collection lives in. Implementations live in the memory, redisstore and
// sqlite subpackages.
package storage

//go:generate mockgen -destination=mock/mock_store.go -package=storagemock github.com/KirkDiggler/toon-tailor/internal/storage Store

import (
	"context"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

// Reasons attached to backend failures
const (
	ReasonRead  = "STORAGE_READ_FAILURE"
	ReasonWrite = "STORAGE_WRITE_FAILURE"
)

// UpdateFunc receives the current value, or found=false when the key is
// absent, and returns the value to write. Returning an error aborts the
// update without writing.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// Store is a key-value store of opaque byte values
type Store interface {
	// Get returns the value stored at key.
	// Returns errors.NotFound when the key is absent.
	// Returns an error with ReasonRead when the backend fails.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored at key.
	// Returns an error with ReasonWrite when the backend fails.
	Set(ctx context.Context, key string, value []byte) error

	// Update runs a read-modify-write on key atomically with respect to
	// other writers of the same store. Errors returned by fn are passed
	// through unchanged. Backend failures carry ReasonRead or ReasonWrite.
	Update(ctx context.Context, key string, fn UpdateFunc) error

	// Close releases backend resources
	Close() error
}

// ReadError tags a backend read failure
func ReadError(err error, backend string) error {
	if errors.IsContext(err) {
		return errors.FromContext(err, backend+" read interrupted").WithReason(ReasonRead)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, backend+" read failed").WithReason(ReasonRead)
}

// WriteError tags a backend write failure
func WriteError(err error, backend string) error {
	if errors.IsContext(err) {
		return errors.FromContext(err, backend+" write interrupted").WithReason(ReasonWrite)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, backend+" write failed").WithReason(ReasonWrite)
}

// NotFound is returned by Get for an absent key
func NotFound(key string) error {
	return errors.NotFoundf("key %s not found", key)
}
