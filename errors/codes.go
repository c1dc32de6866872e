package errors

// ErrorCode classifies an AppError independently of its HTTP status
type ErrorCode int

const ErrorCode_INTERNAL ErrorCode = 1

// Summarization pipeline codes
const (
	ErrorCode_VIDEO_ID_REQUIRED ErrorCode = iota + 1000
	ErrorCode_TRANSCRIPT_NOT_AVAILABLE
	ErrorCode_TRANSCRIPT_FETCH_FAILED
	ErrorCode_TRANSCRIPT_INVALID
	ErrorCode_AI_SUMMARY_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_VIDEO_ID_REQUIRED:        "VIDEO_ID_REQUIRED",
	ErrorCode_TRANSCRIPT_NOT_AVAILABLE: "TRANSCRIPT_NOT_AVAILABLE",
	ErrorCode_TRANSCRIPT_FETCH_FAILED:  "TRANSCRIPT_FETCH_FAILED",
	ErrorCode_TRANSCRIPT_INVALID:       "TRANSCRIPT_INVALID",
	ErrorCode_AI_SUMMARY_FAILED:        "AI_SUMMARY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
