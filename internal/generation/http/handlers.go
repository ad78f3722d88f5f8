package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realty-decks/deck-backend/internal/gamma"
	"github.com/realty-decks/deck-backend/internal/generation/domain"
	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/notify"
)

const queuedMessage = "Your deck is being generated. Check your email in about 2 minutes."

// Generate runs a Gamma generation and answers once it has finished.
func (h *Handler) Generate(c *gin.Context) {
	logger := logging.NewLogger(c.Request.Context())

	var req domain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.generations.Generate(c.Request.Context(), req)
	if err == nil {
		c.JSON(http.StatusOK, res)
		return
	}

	logger.LogError("generate_gamma", err)
	var statusErr *gamma.StatusError
	switch {
	case errors.Is(err, gamma.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gamma API key not configured"})
	case errors.As(err, &statusErr):
		c.JSON(statusErr.StatusCode, gin.H{"error": "Failed to start generation", "details": statusErr.Body})
	case errors.Is(err, gamma.ErrFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation timed out or failed", "status": gamma.StatusFailed})
	case errors.Is(err, gamma.ErrTimeout):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation timed out or failed", "status": gamma.StatusPending})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate deck"})
	}
}

// Enqueue starts an emailed generation and answers immediately.
func (h *Handler) Enqueue(c *gin.Context) {
	var req domain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.generations.Enqueue(c.Request.Context(), req)
	if errors.Is(err, domain.ErrEmailRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("generate_gamma_async", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"queued":  true,
		"message": queuedMessage,
		"jobId":   job.ID,
	})
}

func (h *Handler) GetJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job ID is required"})
		return
	}

	job, err := h.generations.Get(c.Request.Context(), id)
	if err == domain.ErrJobNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// SendDeck emails a download link for a deck exported earlier.
func (h *Handler) SendDeck(c *gin.Context) {
	var req notify.SendDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.sender.SendDeck(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, notify.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
	case errors.Is(err, notify.ErrNoRecipient), errors.Is(err, notify.ErrNoExportURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and download URL are required"})
	default:
		logging.NewLogger(c.Request.Context()).LogError("send_deck", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
	}
}
