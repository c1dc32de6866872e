package entities

// SummaryResult is returned to the caller and never persisted
type SummaryResult struct {
	VideoID    string
	Summary    string
	Transcript string
}
