package http

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
	sessiondomain "github.com/realty-decks/deck-backend/internal/session/domain"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

type stubSessions map[string]*sessiondomain.State

func (s stubSessions) Get(_ context.Context, id string) (*sessiondomain.State, error) {
	st, ok := s[id]
	if !ok {
		return nil, sessiondomain.ErrSessionNotFound
	}
	return st, nil
}

func setup(sessions Sessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, sessions)
	h.now = func() time.Time { return fixedNow }
	r := gin.New()
	h.Register(r.Group("/api/v1"))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreview(t *testing.T) {
	r := setup(nil)
	w := post(r, "/api/v1/decks/preview", `{"brand":{"companyName":"Acme"},"projectData":{"projectName":"Harbor View"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Deck assembler.Deck `json:"deck"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Harbor View", body.Deck.Title)
	assert.Equal(t, "Acme", body.Deck.Author)
	assert.Len(t, body.Deck.Slides, 10)
}

func TestPreviewBadBody(t *testing.T) {
	w := post(setup(nil), "/api/v1/decks/preview", `{"brand":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownload(t *testing.T) {
	w := post(setup(nil), "/api/v1/decks/pptx", `{"projectData":{"projectName":"Harbor View"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, pptxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Harbor-View-2025-03-14.pptx"`, w.Header().Get("Content-Disposition"))

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.NotEmpty(t, zr.File)
}

func TestDownloadCorruptLogo(t *testing.T) {
	w := post(setup(nil), "/api/v1/decks/pptx", `{"brand":{"logo":"%%%"}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate presentation"}`, w.Body.String())
}

func TestPreviewFromSession(t *testing.T) {
	st := sessiondomain.NewState("s1", fixedNow)
	st.Brand.CompanyName = "Stored Co"
	st.ProjectData = domain.ProjectData{ProjectName: "Stored Project", BedCount: "72"}
	r := setup(stubSessions{"s1": st})

	w := post(r, "/api/v1/decks/preview", `{"sessionId":"s1","projectData":{"projectName":"Override"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Deck assembler.Deck `json:"deck"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Override", body.Deck.Title)
	assert.Equal(t, "Stored Co", body.Deck.Author)

	w = post(r, "/api/v1/decks/preview", `{"sessionId":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = post(setup(nil), "/api/v1/decks/preview", `{"sessionId":"s1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
