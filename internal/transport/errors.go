package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedBody is returned when a 2xx response body is not valid JSON.
var ErrMalformedBody = errors.New("malformed response body")

const maxErrorBody = 512

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Host       Host
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("target API error (status %d) on %s %s: %s", e.StatusCode, e.Host, e.Endpoint, body)
}

// IsNotFound reports whether err carries a 404 status from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
