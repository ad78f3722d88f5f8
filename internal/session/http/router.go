package http

import "github.com/gin-gonic/gin"

// Register registers the session routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.CreateSession)
	rg.GET("/sessions/:id", h.GetSession)
	rg.DELETE("/sessions/:id", h.DeleteSession)
	rg.POST("/sessions/:id/reset", h.ResetSession)
	rg.PATCH("/sessions/:id/data", h.MergeData)
	rg.PUT("/sessions/:id/brand", h.SetBrand)
	rg.POST("/sessions/:id/categories/:category/complete", h.CompleteCategory)
	rg.GET("/sessions/:id/readiness", h.GetReadiness)
	rg.POST("/sessions/:id/messages", h.PostMessage)
}
