package ai

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/video-summarizer/internal/domain/entities"
	ucerrors "github.com/johnquangdev/video-summarizer/internal/usecase/errors"
)

// TranscriptFetcher retrieves the time-coded transcript of a video
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) (entities.Transcript, error)
}

// TextGenerator produces a single non-streamed completion for a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service defines AI orchestration methods
type Service interface {
	Summarize(ctx context.Context, videoID string) (*entities.SummaryResult, error)
}

type aiService struct {
	transcripts TranscriptFetcher
	generator   TextGenerator
	logger      *zap.Logger
}

// NewAIService constructs a new AI service
func NewAIService(transcripts TranscriptFetcher, generator TextGenerator, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &aiService{
		transcripts: transcripts,
		generator:   generator,
		logger:      logger,
	}
}

// Summarize fetches the transcript of videoID, flattens it and asks the language model for a summary.
// Steps run strictly in order; the first failure ends the pipeline and nothing partial is returned.
func (s *aiService) Summarize(ctx context.Context, videoID string) (*entities.SummaryResult, error) {
	if videoID == "" {
		return nil, ucerrors.ErrValidation
	}

	log := s.logger.With(zap.String("video_id", videoID))
	log.Info("📥 Fetching transcript for video")

	start := time.Now()
	transcript, err := s.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		log.Error("❌ Failed to fetch transcript", zap.Error(err))
		return nil, err
	}

	if transcript.IsEmpty() {
		log.Warn("⚠️  Transcript has no segments")
		return nil, ucerrors.ErrEmptyTranscript
	}

	text := transcript.Text()
	log.Info("✅ Transcript fetched",
		zap.Int("segments", len(transcript)),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)

	start = time.Now()
	summary, err := s.generator.GenerateText(ctx, BuildSummaryPrompt(text))
	if err != nil {
		log.Error("❌ Failed to generate summary", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrSummarization, err)
	}

	log.Info("✅ Summary generated",
		zap.Int("summary_chars", len(summary)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &entities.SummaryResult{
		VideoID:    videoID,
		Summary:    summary,
		Transcript: text,
	}, nil
}
