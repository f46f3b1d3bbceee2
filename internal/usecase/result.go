package usecase

import (
	"errors"

	"github.com/giovannicg/INMEDT/internal/entity"
)

// Result is what every storefront mutation returns. Failures never escape as
// errors or panics past this boundary.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok(msg string) Result { return Result{Success: true, Message: msg} }

func rejected(msg string) Result { return Result{Message: msg} }

// failed prefers the backend's own message and falls back to a generic one.
func failed(err error, fallback string) Result {
	return Result{Message: MessageOf(err, fallback)}
}

type userMessager interface {
	UserMessage() string
}

// MessageOf extracts a user-facing message from err.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var um userMessager
	if errors.As(err, &um) {
		if m := um.UserMessage(); m != "" {
			return m
		}
	}
	return fallback
}

func invalid(err error) Result {
	return Result{Message: entity.Describe(err)}
}
