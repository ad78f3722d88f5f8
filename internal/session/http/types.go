package http

import (
	"github.com/realty-decks/deck-backend/internal/session/service"
)

// Handler serves the wizard session endpoints.
type Handler struct {
	sessions *service.SessionService
}

func New(sessions *service.SessionService) *Handler {
	return &Handler{sessions: sessions}
}
