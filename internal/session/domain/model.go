package domain

import (
	"errors"
	"time"

	deck "github.com/realty-decks/deck-backend/internal/deck/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// MaxMessages bounds the stored transcript; older turns are dropped first.
const MaxMessages = 200

// Message is one stored turn of the wizard conversation.
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// State is everything the wizard remembers for one user.
type State struct {
	ID                  string           `json:"id"`
	Brand               deck.BrandConfig `json:"brand"`
	ProjectData         deck.ProjectData `json:"projectData"`
	CompletedCategories []deck.Category  `json:"completedCategories"`
	CurrentCategory     deck.Category    `json:"currentCategory"`
	Messages            []Message        `json:"messages,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// NewState starts a session at the first category with the default brand.
func NewState(id string, now time.Time) *State {
	return &State{
		ID:                  id,
		Brand:               deck.DefaultBrand(),
		CompletedCategories: []deck.Category{},
		CurrentCategory:     deck.Categories()[0],
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// IsCompleted reports whether c was already marked complete.
func (s *State) IsCompleted(c deck.Category) bool {
	for _, done := range s.CompletedCategories {
		if done == c {
			return true
		}
	}
	return false
}

// CompleteCategory records c once and moves the wizard to the category
// after it. Completing the last category leaves it current.
func (s *State) CompleteCategory(c deck.Category) {
	if !s.IsCompleted(c) {
		s.CompletedCategories = append(s.CompletedCategories, c)
	}
	if next, ok := c.Next(); ok {
		s.CurrentCategory = next
	} else {
		s.CurrentCategory = c
	}
}

// AppendMessages adds turns and trims the transcript to MaxMessages.
func (s *State) AppendMessages(msgs ...Message) {
	s.Messages = append(s.Messages, msgs...)
	if over := len(s.Messages) - MaxMessages; over > 0 {
		s.Messages = append([]Message(nil), s.Messages[over:]...)
	}
}

// Gate decides when enough has been collected to offer generation: at least
// MinCategories completed categories or at least MinFields populated fields.
type Gate struct {
	MinCategories int
	MinFields     int
}

func DefaultGate() Gate {
	return Gate{MinCategories: 3, MinFields: 5}
}

type Readiness struct {
	Ready               bool `json:"ready"`
	CompletedCategories int  `json:"completedCategories"`
	PopulatedFields     int  `json:"populatedFields"`
	MinCategories       int  `json:"minCategories"`
	MinFields           int  `json:"minFields"`
}

func (g Gate) Evaluate(s *State) Readiness {
	r := Readiness{
		CompletedCategories: len(s.CompletedCategories),
		PopulatedFields:     s.ProjectData.PopulatedCount(),
		MinCategories:       g.MinCategories,
		MinFields:           g.MinFields,
	}
	r.Ready = r.CompletedCategories >= g.MinCategories || r.PopulatedFields >= g.MinFields
	return r
}
