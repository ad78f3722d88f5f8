package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func Register(rg *gin.RouterGroup, svc *Service) {
	h := &Handler{svc: svc}

	rg.POST("/feedback", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var f Feedback
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit feedback"})
		return
	}
	f.ID = ""

	if err := h.svc.Submit(c.Request.Context(), &f); err != nil {
		if errors.Is(err, ErrEmptyFeedback) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Feedback is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
