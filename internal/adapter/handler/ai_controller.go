package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-summarizer/errors"
	"github.com/johnquangdev/video-summarizer/internal/adapter/dto"
	aiuse "github.com/johnquangdev/video-summarizer/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/video-summarizer/internal/usecase/errors"
)

// AIController handles API endpoints that trigger AI processing
type AIController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

// Summarize fetches a video transcript and returns it together with an AI summary
// @Summary      Summarize a YouTube video
// @Description  Fetches the video transcript, flattens it to plain text and asks the language model for a concise summary
// @Tags         AI
// @Produce      json
// @Param        videoId  query     string                 true  "YouTube video ID"
// @Success      200      {object}  dto.SummaryResponse    "Summary and flattened transcript"
// @Failure      400      {object}  common.ErrorResponse   "Video ID is required"
// @Failure      404      {object}  common.ErrorResponse   "No transcript available"
// @Failure      500      {object}  common.ErrorResponse   "Internal server error"
// @Router       /api/transcript [get]
func (ac *AIController) Summarize(c echo.Context) error {
	// Only the query string carries the video id; any request body is ignored.
	var req dto.SummarizeRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return HandleError(ac.logger, c, errors.ErrVideoIDRequired())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrVideoIDRequired())
	}

	result, err := ac.svc.Summarize(c.Request().Context(), req.VideoID)
	if err != nil {
		return HandleError(ac.logger, c, toAppError(req.VideoID, err))
	}
	return HandleSuccess(ac.logger, c, dto.NewSummaryResponse(result))
}

// toAppError maps pipeline failures onto the HTTP error taxonomy
func toAppError(videoID string, err error) errors.AppError {
	switch {
	case stdErrors.Is(err, ucerrors.ErrValidation):
		return errors.ErrVideoIDRequired()
	case stdErrors.Is(err, ucerrors.ErrEmptyTranscript):
		return errors.ErrNoTranscript(videoID)
	case stdErrors.Is(err, ucerrors.ErrTranscriptFetch):
		return errors.ErrTranscriptFetchFailed(err)
	case stdErrors.Is(err, ucerrors.ErrTranscriptFormat):
		return errors.ErrTranscriptInvalid(err)
	case stdErrors.Is(err, ucerrors.ErrSummarization):
		return errors.ErrAISummaryFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}
