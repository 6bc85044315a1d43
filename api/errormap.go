package api

import (
	"errors"
	"strings"
)

// MappedError is the single normalized error shape consumed by display
// code, so callers never branch on error internals.
type MappedError struct {
	Status     int
	Code       string
	Message    string
	RequestID  string
	IsAPIError bool
}

// MapError coerces any failure into a MappedError. Classified API errors
// keep their status/code/message; everything else becomes UNKNOWN_ERROR
// with status 0 rather than crashing the caller.
func MapError(err error, fallbackMessage string) MappedError {
	fallback := strings.TrimSpace(fallbackMessage)
	if fallback == "" {
		fallback = "Request failed"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		message := strings.TrimSpace(apiErr.Message)
		if message == "" {
			message = fallback
		}
		code := strings.TrimSpace(apiErr.Code)
		if code == "" {
			code = "HTTP_ERROR"
		}
		return MappedError{
			Status:     apiErr.Status,
			Code:       code,
			Message:    message,
			RequestID:  strings.TrimSpace(apiErr.RequestID),
			IsAPIError: true,
		}
	}

	if err != nil {
		message := strings.TrimSpace(err.Error())
		if message == "" {
			message = fallback
		}
		return MappedError{
			Status:     0,
			Code:       "UNKNOWN_ERROR",
			Message:    message,
			IsAPIError: false,
		}
	}

	return MappedError{
		Status:     0,
		Code:       "UNKNOWN_ERROR",
		Message:    fallback,
		IsAPIError: false,
	}
}

// FormatOpts controls FormatMapped output. The zero value renders the bare
// message plus a trailing request id line when one is present.
type FormatOpts struct {
	IncludeCode   bool
	OmitRequestID bool
}

// FormatMapped renders a mapped error for display. Presentation only, no
// side effects.
func FormatMapped(m MappedError, opts FormatOpts) string {
	message := m.Message
	if opts.IncludeCode {
		message = m.Code + ": " + m.Message
	}
	if opts.OmitRequestID || m.RequestID == "" {
		return message
	}
	return message + "\nRequest ID: " + m.RequestID
}
