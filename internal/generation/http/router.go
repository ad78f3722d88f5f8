package http

import "github.com/gin-gonic/gin"

// Register registers the generation routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/decks/gamma", h.Generate)
	rg.POST("/decks/gamma/async", h.Enqueue)
	rg.GET("/decks/jobs/:id", h.GetJob)
	rg.POST("/decks/send", h.SendDeck)
}
