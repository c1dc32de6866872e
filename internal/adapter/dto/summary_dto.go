package dto

import "github.com/johnquangdev/video-summarizer/internal/domain/entities"

// SummarizeRequest is bound from the query string of GET /api/transcript
type SummarizeRequest struct {
	VideoID string `query:"videoId" validate:"required"`
}

// SummaryResponse represents the API response for a video summary
type SummaryResponse struct {
	Summary    string `json:"summary" example:"The video introduces..."`
	Transcript string `json:"transcript" example:"Hi there"`
}

// NewSummaryResponse maps a summarization result onto the response body
func NewSummaryResponse(r *entities.SummaryResult) SummaryResponse {
	return SummaryResponse{
		Summary:    r.Summary,
		Transcript: r.Transcript,
	}
}
