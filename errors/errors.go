package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the error type rendered by the HTTP layer
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

// Summarization Errors

// ErrVideoIDRequired is returned when the caller omits the videoId query parameter.
func ErrVideoIDRequired() AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_VIDEO_ID_REQUIRED,
		Message:   "Video ID is required",
		Timestamp: time.Now(),
	}
}

// ErrNoTranscript is returned when the provider has a transcript with zero segments.
func ErrNoTranscript(videoID string) AppError {
	return AppError{
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_TRANSCRIPT_NOT_AVAILABLE,
		Message:   "No transcript available",
		Timestamp: time.Now(),
	}.WithDetail("video_id", videoID)
}

func ErrTranscriptFetchFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_TRANSCRIPT_FETCH_FAILED,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

func ErrTranscriptInvalid(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_TRANSCRIPT_INVALID,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

func ErrAISummaryFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_AI_SUMMARY_FAILED,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}
