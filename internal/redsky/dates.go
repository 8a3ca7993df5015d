package redsky

import (
	"fmt"
	"time"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// Date layouts used by the API. Each field has its own format.
const (
	// AvailabilityLayout covers release, purchase, backorder and launch dates.
	AvailabilityLayout = "2006-01-02T15:04:05.000Z"
	// ReviewLayout covers review submission times, e.g. 2021-03-04T05:06:07+0000.
	ReviewLayout = "2006-01-02T15:04:05-0700"
)

// DateError reports a date string that does not match its field's layout.
type DateError struct {
	Field  string
	Value  string
	Layout string
	Err    error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("parsing %s %q with layout %q: %v", e.Field, e.Value, e.Layout, e.Err)
}

// Unwrap lets errors.Is match both ErrSchemaMismatch and the parse error.
func (e *DateError) Unwrap() []error {
	return []error{domain.ErrSchemaMismatch, e.Err}
}

// ParseDate parses value with layout and normalizes the result to UTC.
func ParseDate(field, value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, &DateError{Field: field, Value: value, Layout: layout, Err: err}
	}
	return t.UTC(), nil
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(field, value, layout string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value, layout)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
