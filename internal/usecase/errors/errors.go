package errors

import "errors"

// Summarization pipeline errors
var (
	ErrValidation       = errors.New("video id is required")
	ErrTranscriptFetch  = errors.New("failed to fetch transcript")
	ErrTranscriptFormat = errors.New("invalid transcript data")
	ErrEmptyTranscript  = errors.New("no transcript available")
	ErrSummarization    = errors.New("failed to generate summary")
)
