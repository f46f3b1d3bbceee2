package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadResponse  = errors.New("unexpected response shape")
	ErrTransport    = errors.New("backend unreachable")
)

// Error is a non-2xx answer from the backend. Message is what the backend
// said, suitable for showing as-is.
type Error struct {
	Op      string
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) UserMessage() string { return e.Message }

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// messageFrom reads the backend's error body: plain text, or a JSON object
// with one of the usual keys.
func messageFrom(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return defaultMessage(status)
	}
	if strings.HasPrefix(text, "{") {
		var m map[string]any
		if err := json.Unmarshal(body, &m); err == nil {
			for _, k := range []string{"error", "message", "mensaje"} {
				if s, ok := m[k].(string); ok && s != "" {
					return s
				}
			}
			// field -> message maps from bean validation
			for _, v := range m {
				if s, ok := v.(string); ok && s != "" {
					return s
				}
			}
			return defaultMessage(status)
		}
	}
	if strings.HasPrefix(text, "\"") {
		var s string
		if err := json.Unmarshal(body, &s); err == nil && s != "" {
			return s
		}
	}
	return text
}

func defaultMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "Your session has expired, please log in again"
	case status == http.StatusForbidden:
		return "You are not allowed to do that"
	case status == http.StatusNotFound:
		return "Not found"
	case status >= 500:
		return "The server had a problem, try again later"
	}
	return "Request failed"
}
