package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/logging"
)

var ErrNoExportURL = errors.New("download url is required")

// Mailer composes the product's notifications on top of the raw clients.
type Mailer struct {
	email        *EmailClient
	slack        *SlackClient
	feedbackTo   string
	feedbackFrom string
}

func NewMailer(email *EmailClient, slack *SlackClient, feedbackTo, feedbackFrom string) *Mailer {
	return &Mailer{email: email, slack: slack, feedbackTo: feedbackTo, feedbackFrom: feedbackFrom}
}

func (m *Mailer) EmailConfigured() bool {
	return m.email.Configured()
}

// SendDeckRequest is a request to email an already exported deck.
type SendDeckRequest struct {
	Email       string             `json:"email"`
	ExportURL   string             `json:"exportUrl"`
	ProjectData domain.ProjectData `json:"projectData"`
	CompanyName string             `json:"companyName"`
}

// SendDeck emails a download link. It fails with ErrNotConfigured before
// looking at the request, then with ErrNoRecipient or ErrNoExportURL.
func (m *Mailer) SendDeck(ctx context.Context, req SendDeckRequest) error {
	if !m.email.Configured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(req.Email) == "" {
		return ErrNoRecipient
	}
	if strings.TrimSpace(req.ExportURL) == "" {
		return ErrNoExportURL
	}
	return m.SendDeckReady(ctx, req.Email, DeckReady{
		Data:        req.ProjectData,
		CompanyName: req.CompanyName,
		ExportURL:   req.ExportURL,
	})
}

func (m *Mailer) SendDeckReady(ctx context.Context, to string, d DeckReady) error {
	msg, err := DeckReadyMessage(to, d)
	if err != nil {
		return err
	}
	return m.email.Send(ctx, msg)
}

func (m *Mailer) SendDeckFailed(ctx context.Context, to string, data domain.ProjectData, reason string) error {
	msg, err := DeckFailedMessage(to, data, reason)
	if err != nil {
		return err
	}
	return m.email.Send(ctx, msg)
}

// ForwardFeedback posts to Slack and to the feedback inbox, each only when
// configured. Both channels are attempted; their errors are joined.
func (m *Mailer) ForwardFeedback(ctx context.Context, fb Feedback) error {
	logger := logging.NewLogger(ctx)
	var errs []error

	if m.slack.Configured() {
		if err := m.slack.PostFeedback(ctx, fb); err != nil {
			logger.LogWarnf("forward_feedback", "slack: %v", err)
			errs = append(errs, err)
		}
	}

	if m.email.Configured() && m.feedbackTo != "" {
		msg, err := FeedbackMessage(m.feedbackTo, m.feedbackFrom, fb)
		if err == nil {
			err = m.email.Send(ctx, msg)
		}
		if err != nil {
			logger.LogWarnf("forward_feedback", "email: %v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
