package object

import (
	"errors"
	"fmt"

	"github.com/3leaps/gostratus/pkg/objpath"
)

// Sentinel errors shared across provider dialects.
var (
	// ErrNotFound indicates the requested object does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrAccessDenied indicates insufficient permissions.
	ErrAccessDenied = errors.New("access denied")

	// ErrBucketNotFound indicates the bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrInvalidCredentials indicates authentication failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProviderUnavailable indicates the provider service is unavailable.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrThrottled indicates the request was rate limited by the provider.
	ErrThrottled = errors.New("request throttled")
)

// BackendError wraps a provider-level failure with the store context it
// occurred against.
//
// The translation layer is provider-agnostic, so Store is often empty; it
// is populated by outer layers that know which backend they talked to.
type BackendError struct {
	// Store identifies the backend, if known (e.g. "s3", "azure").
	Store string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Store != "" {
		return fmt.Sprintf("%s: %v", e.Store, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error indicates an object was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAccessDenied returns true if the error indicates insufficient permissions.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsBucketNotFound returns true if the error indicates the bucket does not exist.
func IsBucketNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}

// IsInvalidCredentials returns true if the error indicates authentication failed.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsProviderUnavailable returns true if the error indicates the provider service is unavailable.
func IsProviderUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}

// IsThrottled returns true if the error indicates the request was rate limited.
func IsThrottled(err error) bool {
	return errors.Is(err, ErrThrottled)
}

// IsPathError returns true if the error originated from parsing a raw key
// or prefix into a structured path.
func IsPathError(err error) bool {
	var parseErr *objpath.ParseError
	return errors.As(err, &parseErr)
}
