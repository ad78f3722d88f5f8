package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/deck/fields"
)

const baseStyle = `body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #1e293b; background: #f8fafc; margin: 0; padding: 0; }
.wrapper { background: #f8fafc; padding: 40px 20px; }
.container { max-width: 560px; margin: 0 auto; background: white; border-radius: 16px; overflow: hidden; }
.header { background: linear-gradient(135deg, #4F46E5 0%, #7C3AED 100%); padding: 40px 30px; text-align: center; }
.header h1 { color: white; margin: 0; font-size: 24px; font-weight: 600; }
.header p { color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 15px; }
.content { padding: 40px 30px; }
.download-box { background: #EEF2FF; border-radius: 12px; padding: 30px; text-align: center; margin: 25px 0; }
.button { display: inline-block; background: #4F46E5; color: white !important; padding: 14px 32px; text-decoration: none; border-radius: 10px; font-weight: 600; margin: 10px 5px 0 5px; }
.details { background: #f8fafc; border-radius: 10px; padding: 20px; margin: 25px 0; }
.details h3 { margin: 0 0 15px 0; color: #475569; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px; }
.details ul { margin: 0; padding: 0; list-style: none; }
.details li { padding: 8px 0; border-bottom: 1px solid #e2e8f0; font-size: 14px; }
.note { background: #FEF3C7; border-radius: 8px; padding: 15px; font-size: 13px; color: #92400E; margin-top: 25px; }
.footer { padding: 25px 30px; background: #f8fafc; text-align: center; font-size: 12px; color: #94a3b8; }
h1.error { color: #dc2626; }`

const deckReadyHTML = `<!DOCTYPE html>
<html>
<head><style>{{.Style}}</style></head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <h1>Your Investor Deck is Ready</h1>
        <p>{{.ProjectName}}</p>
      </div>
      <div class="content">
        <p>Great news! Your professional investor deck has been created and is ready for download.</p>
        <div class="download-box">
          <p style="margin: 0 0 5px 0; color: #64748b; font-size: 14px;">Use the links below to open your deck</p>
          {{if .GammaURL}}<a href="{{.GammaURL}}" class="button">View &amp; Edit in Gamma</a>{{end}}
          {{if .ExportURL}}<a href="{{.ExportURL}}" class="button">Download PowerPoint</a>{{end}}
        </div>
        <div class="details">
          <h3>Project Summary</h3>
          <ul>
          {{range .Summary}}<li><strong>{{.Label}}:</strong> {{.Value}}</li>
          {{end}}</ul>
        </div>
        <div class="note">
          <strong>Note:</strong> This download link will expire in 24 hours. Please download your deck promptly.
        </div>
      </div>
      <div class="footer">
        <p>This deck was professionally generated for your investment presentation.</p>
        <p style="margin-top: 10px;">Questions? Reply to this email.</p>
      </div>
    </div>
  </div>
</body>
</html>`

const deckFailedHTML = `<!DOCTYPE html>
<html>
<head><style>{{.Style}}</style></head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="content">
        <h1 class="error">Deck Generation Issue</h1>
        <p>We encountered an issue generating your investor deck for <strong>{{.ProjectName}}</strong>.</p>
        <p><strong>Error:</strong> {{.Reason}}</p>
        <p>Please try again or contact support if the issue persists.</p>
      </div>
    </div>
  </div>
</body>
</html>`

const feedbackHTML = `<h2>New Feedback</h2>
<p><strong>Category:</strong> {{.Category}}</p>
<p><strong>Project:</strong> {{.ProjectName}}</p>
<p><strong>Feedback:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Submitted: {{.SubmittedAt}}</small></p>`

var (
	deckReadyTmpl  = template.Must(template.New("deck_ready").Parse(deckReadyHTML))
	deckFailedTmpl = template.Must(template.New("deck_failed").Parse(deckFailedHTML))
	feedbackTmpl   = template.Must(template.New("feedback").Parse(feedbackHTML))
)

type summaryLine struct {
	Label string
	Value string
}

// DeckReady describes a finished deck. GammaURL is optional.
type DeckReady struct {
	Data        domain.ProjectData
	CompanyName string
	GammaURL    string
	ExportURL   string
}

func (d DeckReady) projectName() string {
	v := fields.NewValues(d.Data, d.CompanyName)
	return orDefault(v.First(string(domain.FieldProjectName), fields.KeyCompanyName), "Your Investment Opportunity")
}

// Feedback is a user's comment on the generator.
type Feedback struct {
	Category    string
	Message     string
	ProjectName string
	SubmittedAt time.Time
}

func (f Feedback) projectName() string {
	if strings.TrimSpace(f.ProjectName) == "" {
		return "Unknown"
	}
	return f.ProjectName
}

// Emails leave blank fields to the deck rather than quoting its sample
// figures.
const seeDeck = "See deck for details"

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// DeckReadyMessage builds the email that hands over a finished deck.
func DeckReadyMessage(to string, d DeckReady) (Message, error) {
	v := fields.NewValues(d.Data, d.CompanyName)
	name := d.projectName()
	html, err := render(deckReadyTmpl, map[string]any{
		"Style":       template.CSS(baseStyle),
		"ProjectName": name,
		"GammaURL":    d.GammaURL,
		"ExportURL":   d.ExportURL,
		"Summary": []summaryLine{
			{"Project", name},
			{"Property", orDefault(v.First(string(domain.FieldPropertyAddress)), seeDeck)},
			{"Type", orDefault(v.First(string(domain.FieldFacilityType)), "Healthcare Development")},
			{"Total Raise", orDefault(v.First(string(domain.FieldTotalRaise)), seeDeck)},
			{"Projected IRR", orDefault(v.First(string(domain.FieldProjectedIRR)), seeDeck)},
		},
	})
	if err != nil {
		return Message{}, err
	}
	return Message{To: []string{to}, Subject: "Your Investor Deck: " + name, HTML: html}, nil
}

// DeckFailedMessage tells the requester their deck could not be produced.
func DeckFailedMessage(to string, data domain.ProjectData, reason string) (Message, error) {
	html, err := render(deckFailedTmpl, map[string]any{
		"Style":       template.CSS(baseStyle),
		"ProjectName": orDefault(fields.NewValues(data, "").First(string(domain.FieldProjectName)), "your project"),
		"Reason":      reason,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{To: []string{to}, Subject: "Issue with your Investor Deck", HTML: html}, nil
}

// FeedbackMessage forwards feedback to the team inbox.
func FeedbackMessage(to, from string, fb Feedback) (Message, error) {
	html, err := render(feedbackTmpl, map[string]any{
		"Category":    fb.Category,
		"ProjectName": fb.projectName(),
		"Message":     fb.Message,
		"SubmittedAt": fb.SubmittedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Feedback: %s - %s", fb.Category, fb.projectName()),
		HTML:    html,
	}, nil
}
