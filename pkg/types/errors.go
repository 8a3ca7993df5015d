package domain

import "errors"

var (
	// ErrSchemaMismatch is returned when a payload has the wrong JSON shape
	// or a field is in an unexpected format.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrMissingIdentity is returned when an identity field needed to
	// resolve a reference (tcin, location_id) is empty.
	ErrMissingIdentity = errors.New("missing identity field")
)
