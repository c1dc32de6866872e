package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/video-summarizer/internal/domain/entities"
	ucerrors "github.com/johnquangdev/video-summarizer/internal/usecase/errors"
	"github.com/johnquangdev/video-summarizer/pkg/config"
	pkgvalidator "github.com/johnquangdev/video-summarizer/pkg/validator"
)

const (
	transcriptPath = "/youtube/transcript"

	// maxResponseBytes caps how much of a provider body is decoded
	maxResponseBytes = 16 << 20
)

// Client fetches time-coded transcripts from the RapidAPI youtube-transcripts service
type Client struct {
	apiKey       string
	host         string
	baseURL      string
	chunkSize    int
	maxBodyBytes int64
	client       *http.Client
	validator    *pkgvalidator.CustomValidator
}

// NewClient creates a transcript client from the provided config.
func NewClient(cfg config.TranscriptConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &Client{
		apiKey:       cfg.APIKey,
		host:         cfg.Host,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		chunkSize:    chunkSize,
		maxBodyBytes: maxResponseBytes,
		client:       &http.Client{Timeout: timeout},
		validator:    pkgvalidator.New(),
	}
}

// transcriptResponse keeps content raw so a missing field and a non-array can be told apart
type transcriptResponse struct {
	Content json.RawMessage `json:"content"`
}

// segmentPayload is the declared schema of one provider item
type segmentPayload struct {
	Offset   *float64 `json:"offset" validate:"required"`
	Duration *float64 `json:"duration" validate:"required"`
	Text     *string  `json:"text" validate:"required"`
}

// FetchTranscript returns the transcript segments for videoID in provider order.
// Transport errors and non-2xx statuses wrap ErrTranscriptFetch; unexpected bodies wrap ErrTranscriptFormat.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (entities.Transcript, error) {
	q := url.Values{}
	q.Set("videoId", videoID)
	q.Set("chunkSize", strconv.Itoa(c.chunkSize))
	endpoint := c.baseURL + transcriptPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrTranscriptFetch, err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrTranscriptFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ucerrors.ErrTranscriptFetch, statusText(resp))
	}

	var tr transcriptResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, c.maxBodyBytes)).Decode(&tr); err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrTranscriptFormat, err)
	}
	return c.decodeSegments(tr.Content)
}

func (c *Client) decodeSegments(content json.RawMessage) (entities.Transcript, error) {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" || trimmed == "null" || !strings.HasPrefix(trimmed, "[") {
		return nil, ucerrors.ErrTranscriptFormat
	}

	var items []json.RawMessage
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrTranscriptFormat, err)
	}

	transcript := make(entities.Transcript, 0, len(items))
	for i, item := range items {
		var p segmentPayload
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ucerrors.ErrTranscriptFormat, i, err)
		}
		if err := c.validator.Validate(&p); err != nil {
			missing := pkgvalidator.MissingFields(err)
			return nil, fmt.Errorf("%w: segment %d: missing %s", ucerrors.ErrTranscriptFormat, i, strings.Join(missing, ", "))
		}
		transcript = append(transcript, entities.Segment{
			Offset:   *p.Offset,
			Duration: *p.Duration,
			Text:     *p.Text,
		})
	}
	return transcript, nil
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
