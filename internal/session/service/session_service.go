package service

import (
	"context"
	"errors"
	"strings"
	"time"

	deck "github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/llm"
	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/session/domain"
)

var ErrEmptyMessage = errors.New("message is empty")

// Store is the persistence the service needs; the Redis repository
// satisfies it.
type Store interface {
	Create(ctx context.Context, s *domain.State) error
	Get(ctx context.Context, id string) (*domain.State, error)
	Update(ctx context.Context, id string, fn func(*domain.State) error) (*domain.State, error)
	Delete(ctx context.Context, id string) error
}

type Chatter interface {
	Reply(ctx context.Context, messages []llm.Message, data deck.ProjectData) (llm.ChatTurn, error)
}

type Extractor interface {
	Extract(ctx context.Context, messages []llm.Message) deck.ProjectData
}

// ConverseResult is one completed wizard turn.
type ConverseResult struct {
	Turn      llm.ChatTurn     `json:"turn"`
	Session   *domain.State    `json:"session"`
	Readiness domain.Readiness `json:"readiness"`
}

// SessionService handles the wizard's stored state.
type SessionService struct {
	store     Store
	gate      domain.Gate
	chat      Chatter
	extractor Extractor
	now       func() time.Time
}

func NewSessionService(store Store, gate domain.Gate, chat Chatter, extractor Extractor) *SessionService {
	return &SessionService{
		store:     store,
		gate:      gate,
		chat:      chat,
		extractor: extractor,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a session seeded with the greeting and an optional brand.
func (s *SessionService) Create(ctx context.Context, brand deck.BrandConfig) (*domain.State, error) {
	st := domain.NewState("", s.now())
	st.Brand = st.Brand.Merge(brand)
	st.AppendMessages(domain.Message{Role: string(llm.RoleAssistant), Content: llm.InitialMessage, At: st.CreatedAt})
	if err := s.store.Create(ctx, st); err != nil {
		return nil, err
	}
	logging.NewLogger(ctx).With("session_id", st.ID).LogInfo("session", "created")
	return st, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*domain.State, error) {
	return s.store.Get(ctx, id)
}

// MergeData overlays the non-blank values of partial onto the stored data.
func (s *SessionService) MergeData(ctx context.Context, id string, partial deck.ProjectData) (*domain.State, error) {
	return s.store.Update(ctx, id, func(st *domain.State) error {
		st.ProjectData = st.ProjectData.Merge(partial)
		return nil
	})
}

// SetBrand merges non-blank brand fields into the stored brand.
func (s *SessionService) SetBrand(ctx context.Context, id string, brand deck.BrandConfig) (*domain.State, error) {
	return s.store.Update(ctx, id, func(st *domain.State) error {
		st.Brand = st.Brand.Merge(brand)
		return nil
	})
}

func (s *SessionService) CompleteCategory(ctx context.Context, id string, c deck.Category) (*domain.State, error) {
	if !c.Valid() {
		return nil, deck.ErrUnknownCategory
	}
	return s.store.Update(ctx, id, func(st *domain.State) error {
		st.CompleteCategory(c)
		return nil
	})
}

func (s *SessionService) Readiness(ctx context.Context, id string) (domain.Readiness, error) {
	st, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Readiness{}, err
	}
	return s.gate.Evaluate(st), nil
}

// Converse records a user message, asks the model for the next question and
// folds whatever the transcript now reveals into the project data. The model
// calls happen outside the storage transaction.
func (s *SessionService) Converse(ctx context.Context, id, text string) (*ConverseResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	logger := logging.NewLogger(ctx).With("session_id", id)

	st, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	userMsg := domain.Message{Role: string(llm.RoleUser), Content: text, At: s.now()}
	history := append(toLLM(st.Messages), llm.Message{Role: llm.RoleUser, Content: text})

	turn, err := s.chat.Reply(ctx, history, st.ProjectData)
	if err != nil {
		logger.LogError("converse", err)
		return nil, err
	}
	assistantMsg := domain.Message{Role: string(llm.RoleAssistant), Content: turn.Reply, At: s.now()}

	var extracted deck.ProjectData
	if s.extractor != nil {
		extracted = s.extractor.Extract(ctx, append(history, llm.Message{Role: llm.RoleAssistant, Content: turn.Reply}))
	}

	updated, err := s.store.Update(ctx, id, func(cur *domain.State) error {
		cur.AppendMessages(userMsg, assistantMsg)
		cur.ProjectData = cur.ProjectData.Merge(extracted)
		if turn.CategoryComplete != "" {
			cur.CompleteCategory(turn.CategoryComplete)
		}
		if turn.AllComplete {
			for _, c := range deck.Categories() {
				cur.CompleteCategory(c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ConverseResult{Turn: turn, Session: updated, Readiness: s.gate.Evaluate(updated)}, nil
}

// Reset clears collected data and the transcript but keeps the brand.
func (s *SessionService) Reset(ctx context.Context, id string) (*domain.State, error) {
	return s.store.Update(ctx, id, func(st *domain.State) error {
		fresh := domain.NewState(st.ID, st.CreatedAt)
		fresh.Brand = st.Brand
		fresh.AppendMessages(domain.Message{Role: string(llm.RoleAssistant), Content: llm.InitialMessage, At: s.now()})
		*st = *fresh
		return nil
	})
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func toLLM(msgs []domain.Message) []llm.Message {
	out := make([]llm.Message, 0, len(msgs)+1)
	for _, m := range msgs {
		out = append(out, llm.Message{Role: llm.Role(m.Role), Content: m.Content})
	}
	return out
}
