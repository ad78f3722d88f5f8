package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-decks/deck-backend/internal/metrics"
)

func newTestClient(url string) *Client {
	return NewClient(url, "test-key", WithPollInterval(time.Millisecond))
}

func TestCreateGeneration(t *testing.T) {
	var got GenerationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generations", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"generationId":"gen-1"}`))
	}))
	defer server.Close()

	id, err := newTestClient(server.URL).CreateGeneration(context.Background(), NewDeckRequest("brief"))
	require.NoError(t, err)
	assert.Equal(t, "gen-1", id)

	assert.Equal(t, "brief", got.InputText)
	assert.Equal(t, "generate", got.TextMode)
	assert.Equal(t, "presentation", got.Format)
	assert.Equal(t, 10, got.NumCards)
	assert.Equal(t, "pptx", got.ExportAs)
	assert.Equal(t, "aiGenerated", got.ImageOptions.Source)
	assert.Equal(t, "16x9", got.CardOptions.Dimensions)
}

func TestCreateGeneration_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad key"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateGeneration(context.Background(), NewDeckRequest("brief"))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "bad key", statusErr.Body)
}

func TestNotConfigured(t *testing.T) {
	c := NewClient("", "")
	assert.False(t, c.Configured())

	_, err := c.CreateGeneration(context.Background(), NewDeckRequest("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestWait_Completes(t *testing.T) {
	metrics.ResetMetrics()
	var polls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generations/gen-1", r.URL.Path)
		n := atomic.AddInt32(&polls, 1)
		switch {
		case n == 1:
			w.WriteHeader(http.StatusBadGateway)
		case n < 4:
			_, _ = w.Write([]byte(`{"generationId":"gen-1","status":"pending"}`))
		default:
			_, _ = w.Write([]byte(`{"generationId":"gen-1","status":"completed","gammaUrl":"https://gamma.app/docs/x","exportUrl":"https://cdn/x.pptx","credits":{"deducted":12}}`))
		}
	}))
	defer server.Close()

	g, err := newTestClient(server.URL).Wait(context.Background(), "gen-1", 10)
	require.NoError(t, err)
	assert.Equal(t, "https://gamma.app/docs/x", g.GammaURL)
	assert.Equal(t, "https://cdn/x.pptx", g.ExportURL)
	assert.JSONEq(t, `{"deducted":12}`, string(g.Credits))
	assert.Equal(t, int32(4), atomic.LoadInt32(&polls))

	m := metrics.GetMetrics()
	assert.Equal(t, int64(4), m.PerUpstream["gamma"])
	assert.Equal(t, int64(1), m.UpstreamErrors)
}

func TestWait_Failed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failed"}`))
	}))
	defer server.Close()

	g, err := newTestClient(server.URL).Wait(context.Background(), "gen-2", 5)
	assert.ErrorIs(t, err, ErrFailed)
	require.NotNil(t, g)
	assert.Equal(t, "gen-2", g.ID)
}

func TestWait_AttemptsExhausted(t *testing.T) {
	var polls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Wait(context.Background(), "gen-3", 3)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(3), atomic.LoadInt32(&polls))
}

func TestWait_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(server.URL, "k", WithPollInterval(time.Hour))
	_, err := c.Wait(ctx, "gen-4", 3)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTimeout))
}
