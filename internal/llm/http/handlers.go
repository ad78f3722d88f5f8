// Package http exposes the stateless chat and extraction endpoints.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/llm"
	"github.com/realty-decks/deck-backend/internal/logging"
)

type Chatter interface {
	Reply(ctx context.Context, messages []llm.Message, data domain.ProjectData) (llm.ChatTurn, error)
}

type Extractor interface {
	Extract(ctx context.Context, messages []llm.Message) domain.ProjectData
}

type Handler struct {
	chat      Chatter
	extractor Extractor
}

func New(chat Chatter, extractor Extractor) *Handler {
	return &Handler{chat: chat, extractor: extractor}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/chat/initial", h.Initial)
	rg.POST("/chat", h.Chat)
	rg.POST("/extract", h.Extract)
}

func (h *Handler) Initial(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"content": llm.InitialMessage})
}

func (h *Handler) Chat(c *gin.Context) {
	var body struct {
		Messages    []llm.Message      `json:"messages"`
		ProjectData domain.ProjectData `json:"projectData"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	turn, err := h.chat.Reply(c.Request.Context(), body.Messages, body.ProjectData)
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("chat", err)
		if errors.Is(err, llm.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response"})
		return
	}
	c.JSON(http.StatusOK, turn)
}

// Extract always answers 200; unusable input yields empty data.
func (h *Handler) Extract(c *gin.Context) {
	var body struct {
		Messages []llm.Message `json:"messages"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{}})
		return
	}
	data := h.extractor.Extract(c.Request.Context(), body.Messages)
	c.JSON(http.StatusOK, gin.H{"data": data})
}
