package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/realty-decks/deck-backend/config"
	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	"github.com/realty-decks/deck-backend/internal/feedback"
	"github.com/realty-decks/deck-backend/internal/gamma"
	genrepo "github.com/realty-decks/deck-backend/internal/generation/repository"
	gensvc "github.com/realty-decks/deck-backend/internal/generation/service"
	"github.com/realty-decks/deck-backend/internal/llm"
	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/notify"
	sessiondomain "github.com/realty-decks/deck-backend/internal/session/domain"
	sessionrepo "github.com/realty-decks/deck-backend/internal/session/repository"
	sessionsvc "github.com/realty-decks/deck-backend/internal/session/service"
)

// Services is the wired application graph shared by the router and the
// background scheduler.
type Services struct {
	Figures     catalog.Figures
	Chat        *llm.ChatService
	Extractor   *llm.Extractor
	Mailer      *notify.Mailer
	Sessions    *sessionsvc.SessionService
	Generations *gensvc.GenerationService
	Feedback    *feedback.Service
}

// BuildServices wires every component from config. rdb is required; db may
// be nil, in which case feedback is forwarded but not stored.
func BuildServices(ctx context.Context, cfg *config.Config, rdb *redis.Client, db *pgxpool.Pool) (*Services, error) {
	figures := catalog.DefaultFigures()
	if cfg.Deck.FiguresPath != "" {
		f, err := catalog.LoadFigures(cfg.Deck.FiguresPath)
		if err != nil {
			return nil, err
		}
		figures = f
	}

	provider, err := NewLLMProvider(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		logging.L().Sugar().Warnw("llm provider not configured; chat is disabled", "provider", cfg.LLM.Provider)
	}
	chat := llm.NewChatService(provider, cfg.LLM.MaxTokens)
	extractor := llm.NewExtractor(provider, 0)

	mailer := notify.NewMailer(
		notify.NewEmailClient(cfg.Email.BaseURL, cfg.Email.ResendAPIKey, cfg.Email.From),
		notify.NewSlackClient(cfg.Slack.FeedbackWebhook),
		cfg.Email.FeedbackTo,
		cfg.Email.FeedbackFrom,
	)

	gate := sessiondomain.Gate{MinCategories: cfg.Deck.MinCategories, MinFields: cfg.Deck.MinFields}
	sessions := sessionsvc.NewSessionService(
		sessionrepo.NewSessionRepository(rdb, cfg.Jobs.SessionTTL),
		gate, chat, extractor,
	)

	gammaClient := gamma.NewClient(cfg.Gamma.BaseURL, cfg.Gamma.APIKey, gamma.WithPollInterval(cfg.Gamma.PollInterval))
	generations := gensvc.NewGenerationService(gammaClient, mailer, genrepo.NewJobRepository(rdb, cfg.Jobs.JobTTL), gensvc.Options{
		Figures:       figures,
		SyncAttempts:  cfg.Gamma.SyncAttempts,
		AsyncAttempts: cfg.Gamma.AsyncAttempts,
	})

	var store feedback.Store
	if db != nil {
		repo := feedback.NewRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("feedback schema: %w", err)
		}
		store = repo
	}

	return &Services{
		Figures:     figures,
		Chat:        chat,
		Extractor:   extractor,
		Mailer:      mailer,
		Sessions:    sessions,
		Generations: generations,
		Feedback:    feedback.NewService(store, mailer),
	}, nil
}
