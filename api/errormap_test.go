package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError_ClassifiedError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &APIError{
		Status:    404,
		Code:      "GAME_NOT_FOUND",
		Message:   "no such game",
		RequestID: "req-1",
	})

	mapped := MapError(err, "fallback")
	assert.True(t, mapped.IsAPIError)
	assert.Equal(t, 404, mapped.Status)
	assert.Equal(t, "GAME_NOT_FOUND", mapped.Code)
	assert.Equal(t, "no such game", mapped.Message)
	assert.Equal(t, "req-1", mapped.RequestID)
}

func TestMapError_ClassifiedErrorWithBlankFields(t *testing.T) {
	mapped := MapError(&APIError{Status: 500}, "Something broke")
	assert.True(t, mapped.IsAPIError)
	assert.Equal(t, "HTTP_ERROR", mapped.Code)
	assert.Equal(t, "Something broke", mapped.Message)
}

func TestMapError_PlainError(t *testing.T) {
	mapped := MapError(errors.New("connection refused"), "fallback")
	assert.False(t, mapped.IsAPIError)
	assert.Equal(t, 0, mapped.Status)
	assert.Equal(t, "UNKNOWN_ERROR", mapped.Code)
	assert.Equal(t, "connection refused", mapped.Message)
}

func TestMapError_NilError(t *testing.T) {
	mapped := MapError(nil, "nothing happened")
	assert.False(t, mapped.IsAPIError)
	assert.Equal(t, "UNKNOWN_ERROR", mapped.Code)
	assert.Equal(t, "nothing happened", mapped.Message)
}

func TestMapError_EmptyFallback(t *testing.T) {
	mapped := MapError(nil, "  ")
	assert.Equal(t, "Request failed", mapped.Message)
}

func TestFormatMapped(t *testing.T) {
	mapped := MappedError{
		Code:      "GAME_NOT_FOUND",
		Message:   "no such game",
		RequestID: "req-1",
	}

	assert.Equal(t, "no such game\nRequest ID: req-1", FormatMapped(mapped, FormatOpts{}))
	assert.Equal(t, "GAME_NOT_FOUND: no such game\nRequest ID: req-1", FormatMapped(mapped, FormatOpts{IncludeCode: true}))
	assert.Equal(t, "no such game", FormatMapped(mapped, FormatOpts{OmitRequestID: true}))

	mapped.RequestID = ""
	assert.Equal(t, "no such game", FormatMapped(mapped, FormatOpts{}))
}
