package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cause := stdErrors.New("boom")

	tests := []struct {
		name    string
		err     AppError
		status  int
		code    ErrorCode
		message string
		raw     error
	}{
		{"internal", ErrInternal(cause), http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error", cause},
		{"video id required", ErrVideoIDRequired(), http.StatusBadRequest, ErrorCode_VIDEO_ID_REQUIRED, "Video ID is required", nil},
		{"no transcript", ErrNoTranscript("abc123"), http.StatusNotFound, ErrorCode_TRANSCRIPT_NOT_AVAILABLE, "No transcript available", nil},
		{"fetch failed", ErrTranscriptFetchFailed(cause), http.StatusInternalServerError, ErrorCode_TRANSCRIPT_FETCH_FAILED, "Internal server error", cause},
		{"transcript invalid", ErrTranscriptInvalid(cause), http.StatusInternalServerError, ErrorCode_TRANSCRIPT_INVALID, "Internal server error", cause},
		{"summary failed", ErrAISummaryFailed(cause), http.StatusInternalServerError, ErrorCode_AI_SUMMARY_FAILED, "Internal server error", cause},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPCode)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.raw, tt.err.Raw)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := stdErrors.New("boom")
	err := ErrAISummaryFailed(cause)

	assert.Equal(t, "[AI_SUMMARY_FAILED] Internal server error: boom", err.Error())
	assert.True(t, stdErrors.Is(err, cause))
	assert.Equal(t, "[VIDEO_ID_REQUIRED] Video ID is required", ErrVideoIDRequired().Error())
}

func TestWithDetail(t *testing.T) {
	err := ErrNoTranscript("abc123")
	assert.Equal(t, map[string]string{"video_id": "abc123"}, err.Details)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "INTERNAL", ErrorCode_INTERNAL.String())
	assert.Equal(t, "TRANSCRIPT_INVALID", ErrorCode_TRANSCRIPT_INVALID.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(0).String())
}
