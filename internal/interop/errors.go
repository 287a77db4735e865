package interop

import "errors"

var (
	// ErrNotFound is returned when nothing is bound under a capability name.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateRegistration is returned by a strict registry on re-registration.
	ErrDuplicateRegistration = errors.New("capability already registered")
	// ErrTypeMismatch is returned when a bound value does not implement the requested interface.
	ErrTypeMismatch = errors.New("capability type mismatch")
	// ErrInvalidName is returned for an empty capability name.
	ErrInvalidName = errors.New("capability name cannot be empty")
	// ErrNilImplementation is returned when registering a nil implementation.
	ErrNilImplementation = errors.New("capability implementation cannot be nil")
)
