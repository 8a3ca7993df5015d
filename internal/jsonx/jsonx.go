// Package jsonx holds JSON scalar types that tolerate the loose typing of
// Target API payloads, where identifiers and flags arrive as either strings
// or numbers depending on the endpoint.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// String decodes a JSON string, number or null into a string.
type String string

// UnmarshalJSON implements json.Unmarshaler.
func (s *String) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = String(v)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("jsonx: expected string or number, got %s", b)
		}
		*s = String(n.String())
	}
	return nil
}

// Bool decodes a JSON bool, a "true"/"false"/"Y"/"N" string, a number or
// null into a bool.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (v *Bool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = false
		return nil
	case bytes.Equal(b, []byte("true")):
		*v = true
		return nil
	case bytes.Equal(b, []byte("false")):
		*v = false
		return nil
	}

	var s String
	if err := s.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("jsonx: expected bool, got %s", b)
	}
	switch strings.ToLower(string(s)) {
	case "y", "yes", "true":
		*v = true
	case "", "n", "no", "false":
		*v = false
	default:
		n, err := strconv.ParseFloat(string(s), 64)
		if err != nil {
			return fmt.Errorf("jsonx: expected bool, got %s", b)
		}
		*v = n != 0
	}
	return nil
}

// Decimal decodes a JSON number, a numeric string, an empty string or null
// into a decimal.Decimal. Empty and null decode to zero.
type Decimal struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	var s String
	if err := s.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("jsonx: expected decimal, got %s", b)
	}
	if strings.TrimSpace(string(s)) == "" {
		d.Decimal = decimal.Zero
		return nil
	}
	v, err := decimal.NewFromString(strings.TrimSpace(string(s)))
	if err != nil {
		return fmt.Errorf("jsonx: expected decimal, got %s: %w", b, err)
	}
	d.Decimal = v
	return nil
}
