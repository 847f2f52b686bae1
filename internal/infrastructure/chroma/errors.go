package chroma

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ErrCollectionNotFound is returned when the named collection does not exist.
var ErrCollectionNotFound = errors.New("collection not found")

// StatusError represents an unexpected HTTP status from the vector database.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := "vector database returned status " + http.StatusText(e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func newStatusError(resp *http.Response) *StatusError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
}
