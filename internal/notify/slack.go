package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/realty-decks/deck-backend/internal/metrics"
)

// SlackClient posts Block Kit messages to an incoming webhook.
type SlackClient struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackClient(webhookURL string) *SlackClient {
	return &SlackClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *SlackClient) Configured() bool {
	return c != nil && c.webhookURL != ""
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Fields   []slackText `json:"fields,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

// PostFeedback announces a feedback submission.
func (c *SlackClient) PostFeedback(ctx context.Context, fb Feedback) error {
	if !c.Configured() {
		return nil
	}
	payload := slackPayload{
		Text: "New Feedback Received",
		Blocks: []slackBlock{
			{Type: "header", Text: &slackText{Type: "plain_text", Text: "📝 New Deck Generator Feedback"}},
			{Type: "section", Fields: []slackText{
				{Type: "mrkdwn", Text: "*Category:*\n" + fb.Category},
				{Type: "mrkdwn", Text: "*Project:*\n" + fb.projectName()},
			}},
			{Type: "section", Text: &slackText{Type: "mrkdwn", Text: "*Feedback:*\n" + fb.Message}},
			{Type: "context", Elements: []slackText{
				{Type: "mrkdwn", Text: "Submitted: " + fb.SubmittedAt.UTC().Format(time.RFC3339)},
			}},
		},
	}
	return c.post(ctx, payload)
}

func (c *SlackClient) post(ctx context.Context, payload slackPayload) error {
	start := time.Now()
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		metrics.RecordUpstreamCall(metrics.Slack, time.Since(start), err)
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(metrics.Slack, time.Since(start), err)
		return fmt.Errorf("upstream request failed: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
		metrics.RecordUpstreamCall(metrics.Slack, time.Since(start), err)
		return err
	}
	metrics.RecordUpstreamCall(metrics.Slack, time.Since(start), nil)
	return nil
}
