package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	deck "github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/llm"
	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/session/domain"
	"github.com/realty-decks/deck-backend/internal/session/service"
)

// CreateSession starts a wizard session. The body is optional and may carry
// an initial brand.
func (h *Handler) CreateSession(c *gin.Context) {
	var body struct {
		Brand deck.BrandConfig `json:"brand"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	st, err := h.sessions.Create(c.Request.Context(), body.Brand)
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("create_session", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": st})
}

func (h *Handler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	st, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to get session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed to delete session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted successfully"})
}

func (h *Handler) ResetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	st, err := h.sessions.Reset(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to reset session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

// MergeData accepts a partial ProjectData object; keys outside the field
// registry are ignored.
func (h *Handler) MergeData(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	st, err := h.sessions.MergeData(c.Request.Context(), id, deck.FromMap(body))
	if err != nil {
		writeError(c, err, "failed to update session data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

func (h *Handler) SetBrand(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var brand deck.BrandConfig
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	st, err := h.sessions.SetBrand(c.Request.Context(), id, brand)
	if err != nil {
		writeError(c, err, "failed to update brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

func (h *Handler) CompleteCategory(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	cat, err := deck.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	st, err := h.sessions.CompleteCategory(c.Request.Context(), id, cat)
	if err != nil {
		writeError(c, err, "failed to complete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

func (h *Handler) GetReadiness(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	r, err := h.sessions.Readiness(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to evaluate readiness")
		return
	}
	c.JSON(http.StatusOK, gin.H{"readiness": r})
}

// PostMessage runs one conversation turn.
func (h *Handler) PostMessage(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.sessions.Converse(c.Request.Context(), id, body.Content)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
	case errors.Is(err, llm.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not configured"})
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	default:
		logging.NewLogger(c.Request.Context()).LogError("post_message", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get a reply"})
	}
}

func sessionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session ID is required"})
		return "", false
	}
	return id, true
}

func writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	logging.NewLogger(c.Request.Context()).LogError(msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
