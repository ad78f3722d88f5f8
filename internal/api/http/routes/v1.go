package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	deckhttp "github.com/realty-decks/deck-backend/internal/deck/http"
	"github.com/realty-decks/deck-backend/internal/feedback"
	genhttp "github.com/realty-decks/deck-backend/internal/generation/http"
	gensvc "github.com/realty-decks/deck-backend/internal/generation/service"
	"github.com/realty-decks/deck-backend/internal/llm"
	llmhttp "github.com/realty-decks/deck-backend/internal/llm/http"
	"github.com/realty-decks/deck-backend/internal/notify"
	sessionhttp "github.com/realty-decks/deck-backend/internal/session/http"
	sessionsvc "github.com/realty-decks/deck-backend/internal/session/service"
)

type V1Deps struct {
	Figures     *catalog.Figures
	Chat        *llm.ChatService
	Extractor   *llm.Extractor
	Mailer      *notify.Mailer
	Sessions    *sessionsvc.SessionService
	Generations *gensvc.GenerationService
	Feedback    *feedback.Service
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	deckhttp.New(dep.Figures, dep.Sessions).Register(api)
	genhttp.New(dep.Generations, dep.Mailer).Register(api)
	llmhttp.New(dep.Chat, dep.Extractor).Register(api)
	sessionhttp.New(dep.Sessions).Register(api)
	feedback.Register(api, dep.Feedback)
}
