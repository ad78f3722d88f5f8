// Package http serves deck previews and PowerPoint downloads.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/deck/render"
	"github.com/realty-decks/deck-backend/internal/logging"
	sessiondomain "github.com/realty-decks/deck-backend/internal/session/domain"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Sessions loads stored wizard state so a deck can be built from a session.
type Sessions interface {
	Get(ctx context.Context, id string) (*sessiondomain.State, error)
}

type Handler struct {
	figures  *catalog.Figures
	sessions Sessions
	now      func() time.Time
}

// New builds the handler. figures may be nil for the built-in chart data;
// sessions may be nil, which disables sessionId requests.
func New(figures *catalog.Figures, sessions Sessions) *Handler {
	return &Handler{figures: figures, sessions: sessions, now: time.Now}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/decks/preview", h.Preview)
	rg.POST("/decks/pptx", h.Download)
}

type deckRequest struct {
	SessionID   string             `json:"sessionId"`
	Brand       domain.BrandConfig `json:"brand"`
	ProjectData domain.ProjectData `json:"projectData"`
}

// resolve reads the request and, for a session request, overlays the
// request's brand and data on the stored ones.
func (h *Handler) resolve(c *gin.Context) (domain.BrandConfig, domain.ProjectData, bool) {
	var req deckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return domain.BrandConfig{}, domain.ProjectData{}, false
	}
	if req.SessionID == "" {
		return req.Brand, req.ProjectData, true
	}
	if h.sessions == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessions are not available"})
		return domain.BrandConfig{}, domain.ProjectData{}, false
	}

	st, err := h.sessions.Get(c.Request.Context(), req.SessionID)
	if errors.Is(err, sessiondomain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return domain.BrandConfig{}, domain.ProjectData{}, false
	}
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("load_session", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return domain.BrandConfig{}, domain.ProjectData{}, false
	}
	return st.Brand.Merge(req.Brand), st.ProjectData.Merge(req.ProjectData), true
}

func (h *Handler) assemble(brand domain.BrandConfig, data domain.ProjectData, now time.Time) *assembler.Deck {
	return assembler.Assemble(brand, data, assembler.Options{Figures: h.figures, Now: now})
}

// Preview returns the assembled slides as JSON.
func (h *Handler) Preview(c *gin.Context) {
	brand, data, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"deck": h.assemble(brand, data, h.now())})
}

// Download renders the deck and streams it as a .pptx attachment.
func (h *Handler) Download(c *gin.Context) {
	brand, data, ok := h.resolve(c)
	if !ok {
		return
	}
	now := h.now()
	out, err := render.PPTX(h.assemble(brand, data, now))
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("render_pptx", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate presentation"})
		return
	}

	name := render.FileName(data.ProjectName, now)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, pptxContentType, out)
}
