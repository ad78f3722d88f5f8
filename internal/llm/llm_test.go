package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
)

type fakeProvider struct {
	text string
	err  error
	got  Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req Request) (string, error) {
	f.got = req
	return f.text, f.err
}

func TestExtractJSON(t *testing.T) {
	type out struct {
		A string `json:"a"`
	}
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a":"x"}`, "x"},
		{"fenced", "```json\n{\"a\":\"y\"}\n```", "y"},
		{"surrounded", "Sure! {\"a\":\"z {brace}\"} hope that helps", "z {brace}"},
		{"escaped quote", `{"a":"say \"hi\" }"}`, `say "hi" }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON[out](tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.A)
		})
	}

	_, err := ExtractJSON[out]("no json here")
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = ExtractJSON[out](`{"a": }`)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestParseChatTurn(t *testing.T) {
	turn := ParseChatTurn(`{"reply":"Great, site is done.","categoryComplete":"Site","allComplete":false}`)
	assert.Equal(t, "Great, site is done.", turn.Reply)
	assert.Equal(t, domain.CategorySite, turn.CategoryComplete)
	assert.False(t, turn.AllComplete)

	turn = ParseChatTurn(`{"reply":"All set!","categoryComplete":"terms","allComplete":true}`)
	assert.True(t, turn.AllComplete)

	turn = ParseChatTurn(`{"reply":"ok","categoryComplete":"weather"}`)
	assert.Empty(t, turn.CategoryComplete)

	turn = ParseChatTurn("Just plain text [CATEGORY_COMPLETE: site]")
	assert.Equal(t, "Just plain text [CATEGORY_COMPLETE: site]", turn.Reply)
	assert.Empty(t, turn.CategoryComplete)
}

func TestChatService_Reply(t *testing.T) {
	p := &fakeProvider{text: `{"reply":"What is the bed count?","categoryComplete":"","allComplete":false}`}
	svc := NewChatService(p, 0)

	turn, err := svc.Reply(context.Background(),
		[]Message{{Role: RoleUser, Content: "123 Main St"}},
		domain.ProjectData{PropertyAddress: "123 Main St", LotSize: "2 acres"})
	require.NoError(t, err)
	assert.Equal(t, "What is the bed count?", turn.Reply)

	assert.Equal(t, DefaultChatMaxTokens, p.got.MaxTokens)
	assert.True(t, p.got.JSON)
	assert.True(t, strings.HasSuffix(p.got.System, "## Data Collected So Far\npropertyAddress: 123 Main St\nlotSize: 2 acres"))
}

func TestChatService_ProviderError(t *testing.T) {
	svc := NewChatService(&fakeProvider{err: errors.New("overloaded")}, 0)
	_, err := svc.Reply(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, domain.ProjectData{})
	assert.ErrorContains(t, err, "overloaded")
}

func TestSystemPrompt_NoData(t *testing.T) {
	assert.NotContains(t, SystemPrompt(domain.ProjectData{}), "Data Collected So Far")
}

func TestExtractor(t *testing.T) {
	p := &fakeProvider{text: "```json\n{\"projectName\":\" Harbor View \",\"bedCount\":72,\"demandDrivers\":[\"aging\",\"hospitals\"],\"favoriteColor\":\"blue\",\"nested\":{\"x\":1}}\n```"}
	data := NewExtractor(p, 0).Extract(context.Background(), []Message{
		{Role: RoleAssistant, Content: InitialMessage},
		{Role: RoleUser, Content: "Harbor View, 72 beds"},
	})

	assert.Equal(t, domain.ProjectData{ProjectName: "Harbor View", BedCount: "72", DemandDrivers: "aging, hospitals"}, data)
	assert.Equal(t, DefaultExtractMaxTokens, p.got.MaxTokens)
	require.Len(t, p.got.Messages, 1)
	assert.Contains(t, p.got.Messages[0].Content, "user: Harbor View, 72 beds")
	assert.Contains(t, p.got.Messages[0].Content, `"exitStrategy": "string - exit plan"`)
}

func TestExtractor_Failures(t *testing.T) {
	for name, p := range map[string]*fakeProvider{
		"provider error": {err: errors.New("boom")},
		"not json":       {text: "I could not find any data."},
	} {
		t.Run(name, func(t *testing.T) {
			data := NewExtractor(p, 0).Extract(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
			assert.Zero(t, data.PopulatedCount())
		})
	}
}

func TestAnthropicClient_Complete(t *testing.T) {
	var got anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"hello"}]}`))
	}))
	defer server.Close()

	c := NewAnthropicClient(server.URL, "sk-test", "")
	text, err := c.Complete(context.Background(), Request{
		System:    "sys",
		MaxTokens: 1024,
		Messages: []Message{
			{Role: RoleAssistant, Content: InitialMessage},
			{Role: RoleUser, Content: "hi"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	assert.Equal(t, DefaultAnthropicModel, got.Model)
	assert.Equal(t, 1024, got.MaxTokens)
	assert.Equal(t, "sys", got.System)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}}, got.Messages)
}

func TestAnthropicClient_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewAnthropicClient(server.URL, "k", "").Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	assert.ErrorContains(t, err, "status 429")

	_, err = NewAnthropicClient(server.URL, "", "").Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewAnthropicClient(server.URL, "k", "").Complete(context.Background(), Request{Messages: []Message{{Role: RoleAssistant, Content: "hi"}}})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
