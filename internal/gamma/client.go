// Package gamma talks to the Gamma generations API, which turns a markdown
// brief into a hosted presentation with a PowerPoint export.
package gamma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/metrics"
)

const (
	DefaultBaseURL      = "https://public-api.gamma.app/v1.0"
	DefaultPollInterval = 2 * time.Second
	DefaultTimeout      = 30 * time.Second

	maxErrorBody = 4 << 10
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

const deckInstructions = "This is a real estate investor pitch deck. Make it look extremely professional, " +
	"suitable for presenting to institutional investors and high-net-worth individuals. " +
	"Use a corporate color scheme. Include compelling data visualizations and charts. " +
	"Add relevant images of healthcare facilities and senior care."

type GenerationRequest struct {
	InputText              string       `json:"inputText"`
	TextMode               string       `json:"textMode"`
	Format                 string       `json:"format"`
	NumCards               int          `json:"numCards"`
	ExportAs               string       `json:"exportAs,omitempty"`
	AdditionalInstructions string       `json:"additionalInstructions,omitempty"`
	ImageOptions           ImageOptions `json:"imageOptions"`
	TextOptions            TextOptions  `json:"textOptions"`
	CardOptions            CardOptions  `json:"cardOptions"`
}

type ImageOptions struct {
	Source string `json:"source"`
}

type TextOptions struct {
	Amount   string `json:"amount"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
}

type CardOptions struct {
	Dimensions string `json:"dimensions"`
}

// NewDeckRequest wraps a prompt in the options used for investor decks.
func NewDeckRequest(prompt string) GenerationRequest {
	return GenerationRequest{
		InputText:              prompt,
		TextMode:               "generate",
		Format:                 "presentation",
		NumCards:               10,
		ExportAs:               "pptx",
		AdditionalInstructions: deckInstructions,
		ImageOptions:           ImageOptions{Source: "aiGenerated"},
		TextOptions: TextOptions{
			Amount:   "medium",
			Tone:     "professional, confident, data-driven",
			Audience: "institutional investors and high-net-worth individuals",
		},
		CardOptions: CardOptions{Dimensions: "16x9"},
	}
}

// Generation is the state of one generation as reported by Gamma.
type Generation struct {
	ID        string          `json:"generationId"`
	Status    string          `json:"status"`
	GammaURL  string          `json:"gammaUrl,omitempty"`
	ExportURL string          `json:"exportUrl,omitempty"`
	Credits   json.RawMessage `json:"credits,omitempty"`
}

type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	pollInterval time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// CreateGeneration starts a generation and returns its ID.
func (c *Client) CreateGeneration(ctx context.Context, req GenerationRequest) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	logger := logging.NewLogger(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var out Generation
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/generations", body, &out); err != nil {
		logger.LogError("gamma_create", err)
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("gamma response has no generationId")
	}
	logger.LogInfof("gamma_create", "generation started generation_id=%s", out.ID)
	return out.ID, nil
}

// GetGeneration fetches the current state of a generation.
func (c *Client) GetGeneration(ctx context.Context, id string) (*Generation, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	var out Generation
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/generations/"+id, nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return &out, nil
}

// Wait polls a generation once per poll interval, the first poll one
// interval after the call, for at most maxAttempts polls. A poll that fails
// in transport or with a non-2xx status still counts as an attempt.
func (c *Client) Wait(ctx context.Context, id string, maxAttempts int) (*Generation, error) {
	logger := logging.NewLogger(ctx)

	lim := rate.NewLimiter(rate.Every(c.pollInterval), 1)
	lim.Allow()

	status := StatusPending
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := lim.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for generation %s: %w", id, err)
		}

		g, err := c.GetGeneration(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("wait for generation %s: %w", id, ctx.Err())
			}
			logger.LogWarnf("gamma_poll", "poll failed generation_id=%s attempt=%d: %v", id, attempt, err)
			continue
		}

		status = g.Status
		logger.LogInfof("gamma_poll", "generation_id=%s status=%s attempt=%d", id, status, attempt)
		switch status {
		case StatusCompleted:
			return g, nil
		case StatusFailed:
			return g, fmt.Errorf("%w: generation %s", ErrFailed, id)
		}
	}
	return nil, fmt.Errorf("%w: generation %s still %s after %d attempts", ErrTimeout, id, status, maxAttempts)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte, out any) error {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		metrics.RecordUpstreamCall(metrics.Gamma, time.Since(start), err)
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(metrics.Gamma, time.Since(start), err)
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		metrics.RecordUpstreamCall(metrics.Gamma, time.Since(start), statusErr)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordUpstreamCall(metrics.Gamma, time.Since(start), err)
		return fmt.Errorf("decode response: %w", err)
	}
	metrics.RecordUpstreamCall(metrics.Gamma, time.Since(start), nil)
	return nil
}
