package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/notify"
)

var ErrEmptyFeedback = errors.New("feedback message is empty")

// Store persists feedback. A nil Store disables persistence.
type Store interface {
	Insert(ctx context.Context, f *Feedback) error
}

type Forwarder interface {
	ForwardFeedback(ctx context.Context, fb notify.Feedback) error
}

type Service struct {
	store     Store
	forwarder Forwarder
	now       func() time.Time
}

func NewService(store Store, forwarder Forwarder) *Service {
	return &Service{store: store, forwarder: forwarder, now: func() time.Time { return time.Now().UTC() }}
}

// Submit records and forwards one piece of feedback. Storage and
// forwarding failures are logged and never reach the caller.
func (s *Service) Submit(ctx context.Context, f *Feedback) error {
	if strings.TrimSpace(f.Message) == "" {
		return ErrEmptyFeedback
	}
	if f.SubmittedAt.IsZero() {
		f.SubmittedAt = s.now()
	}
	logger := logging.NewLogger(ctx)
	logger.With("category", f.Category, "project", f.ProjectName).LogInfo("feedback", "feedback received")

	if s.store != nil {
		if err := s.store.Insert(ctx, f); err != nil {
			logger.LogWarnf("feedback", "persist failed: %v", err)
		}
	}

	if s.forwarder != nil {
		err := s.forwarder.ForwardFeedback(ctx, notify.Feedback{
			Category:    f.Category,
			Message:     f.Message,
			ProjectName: f.ProjectName,
			SubmittedAt: f.SubmittedAt,
		})
		if err != nil {
			logger.LogWarnf("feedback", "forward failed: %v", err)
		}
	}
	return nil
}
