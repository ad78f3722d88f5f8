package http

import (
	"context"

	"github.com/realty-decks/deck-backend/internal/generation/service"
	"github.com/realty-decks/deck-backend/internal/notify"
)

// DeckSender emails an already exported deck.
type DeckSender interface {
	SendDeck(ctx context.Context, req notify.SendDeckRequest) error
}

// Handler handles HTTP requests for Gamma generations
type Handler struct {
	generations *service.GenerationService
	sender      DeckSender
}

func New(generations *service.GenerationService, sender DeckSender) *Handler {
	return &Handler{generations: generations, sender: sender}
}
