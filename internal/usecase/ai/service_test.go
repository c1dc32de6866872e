package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/video-summarizer/internal/domain/entities"
	ucerrors "github.com/johnquangdev/video-summarizer/internal/usecase/errors"
)

type fakeFetcher struct {
	transcript entities.Transcript
	err        error
	calls      []string
}

func (f *fakeFetcher) FetchTranscript(_ context.Context, videoID string) (entities.Transcript, error) {
	f.calls = append(f.calls, videoID)
	return f.transcript, f.err
}

type fakeGenerator struct {
	summary string
	err     error
	prompts []string
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.summary, g.err
}

func TestSummarize_Success(t *testing.T) {
	fetcher := &fakeFetcher{transcript: entities.Transcript{
		{Offset: 0, Duration: 2, Text: "Hi"},
		{Offset: 2, Duration: 3, Text: "there"},
	}}
	gen := &fakeGenerator{summary: "Greeting summary"}
	svc := NewAIService(fetcher, gen, zap.NewNop())

	res, err := svc.Summarize(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, &entities.SummaryResult{
		VideoID:    "abc123",
		Summary:    "Greeting summary",
		Transcript: "Hi there",
	}, res)

	assert.Equal(t, []string{"abc123"}, fetcher.calls)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Transcript: Hi there")
	assert.Contains(t, gen.prompts[0], "key points, highlights, and insights")
}

func TestSummarize_EmptyVideoID(t *testing.T) {
	fetcher := &fakeFetcher{}
	gen := &fakeGenerator{}
	svc := NewAIService(fetcher, gen, nil)

	_, err := svc.Summarize(context.Background(), "")
	assert.ErrorIs(t, err, ucerrors.ErrValidation)
	assert.Empty(t, fetcher.calls)
	assert.Empty(t, gen.prompts)
}

func TestSummarize_EmptyTranscript(t *testing.T) {
	fetcher := &fakeFetcher{transcript: entities.Transcript{}}
	gen := &fakeGenerator{}
	svc := NewAIService(fetcher, gen, nil)

	_, err := svc.Summarize(context.Background(), "abc123")
	assert.ErrorIs(t, err, ucerrors.ErrEmptyTranscript)
	assert.Empty(t, gen.prompts)
}

func TestSummarize_FetchErrorsSkipGeneration(t *testing.T) {
	for _, sentinel := range []error{ucerrors.ErrTranscriptFetch, ucerrors.ErrTranscriptFormat} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			fetcher := &fakeFetcher{err: fmt.Errorf("%w: Not Found", sentinel)}
			gen := &fakeGenerator{}
			svc := NewAIService(fetcher, gen, nil)

			res, err := svc.Summarize(context.Background(), "abc123")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, sentinel)
			assert.Empty(t, gen.prompts)
		})
	}
}

func TestSummarize_GenerationError(t *testing.T) {
	fetcher := &fakeFetcher{transcript: entities.Transcript{{Text: "Hi"}}}
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewAIService(fetcher, gen, nil)

	res, err := svc.Summarize(context.Background(), "abc123")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ucerrors.ErrSummarization)
	assert.Equal(t, "failed to generate summary: quota exceeded", err.Error())
}

func TestSummarize_Idempotent(t *testing.T) {
	fetcher := &fakeFetcher{transcript: entities.Transcript{{Text: "Hello"}, {Text: "world"}}}
	gen := &fakeGenerator{summary: "S"}
	svc := NewAIService(fetcher, gen, nil)

	first, err := svc.Summarize(context.Background(), "abc123")
	require.NoError(t, err)
	second, err := svc.Summarize(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, gen.prompts[0], gen.prompts[1])
}

func TestSummarize_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fetcher := &fakeFetcher{err: ucerrors.ErrTranscriptFetch}
	svc := NewAIService(fetcher, &fakeGenerator{}, zap.New(core))

	_, err := svc.Summarize(context.Background(), "abc123")
	require.Error(t, err)

	errLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errLogs, 1)
	assert.Equal(t, "abc123", errLogs[0].ContextMap()["video_id"])
}

func TestBuildSummaryPrompt(t *testing.T) {
	long := strings.Repeat("word ", 100000)
	p := BuildSummaryPrompt(long)
	assert.Contains(t, p, "You are an AI that summarizes YouTube transcripts.")
	assert.True(t, strings.Contains(p, "Transcript: "+long))
}
