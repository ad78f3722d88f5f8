package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/logging"
)

// Extractor turns a transcript into a partial ProjectData.
type Extractor struct {
	provider  Provider
	maxTokens int
}

func NewExtractor(p Provider, maxTokens int) *Extractor {
	if maxTokens <= 0 {
		maxTokens = DefaultExtractMaxTokens
	}
	return &Extractor{provider: p, maxTokens: maxTokens}
}

// Extract never fails: provider errors and unparseable output yield empty
// data. Keys outside the field registry are discarded.
func (e *Extractor) Extract(ctx context.Context, messages []Message) domain.ProjectData {
	logger := logging.NewLogger(ctx)
	if e.provider == nil || len(messages) == 0 {
		return domain.ProjectData{}
	}

	text, err := e.provider.Complete(ctx, Request{
		Messages:  []Message{{Role: RoleUser, Content: ExtractionPrompt(messages)}},
		MaxTokens: e.maxTokens,
		JSON:      true,
	})
	if err != nil {
		logger.LogWarnf("extract", "completion failed: %v", err)
		return domain.ProjectData{}
	}

	raw, err := ExtractJSON[map[string]any](text)
	if err != nil {
		logger.LogWarnf("extract", "unparseable output: %v", err)
		return domain.ProjectData{}
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := scalarString(v); ok {
			values[k] = s
		}
	}
	return domain.FromMap(values)
}

// scalarString renders JSON scalars as display strings. Models sometimes
// answer bedCount: 72 instead of "72".
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := scalarString(item); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), true
	default:
		return fmt.Sprint(t), false
	}
}
