package domain

import (
	"encoding/json"
	"errors"
	"time"

	deck "github.com/realty-decks/deck-backend/internal/deck/domain"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrEmailRequired = errors.New("email is required")
)

// JobStatus is the lifecycle of an emailed generation.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Terminal reports whether the job can no longer change.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Reasons written to the failure email. They are shown to end users.
const (
	ReasonNotConfigured = "Service configuration error"
	ReasonStartFailed   = "Failed to generate deck"
	ReasonTooLong       = "Generation took too long"
	ReasonUnexpected    = "An unexpected error occurred"
)

// Request starts a Gamma generation for the collected data.
type Request struct {
	ProjectData deck.ProjectData `json:"projectData"`
	CompanyName string           `json:"companyName"`
	Email       string           `json:"email"`
}

// Result is the answer of a synchronous generation.
type Result struct {
	Success   bool            `json:"success"`
	GammaURL  string          `json:"gammaUrl"`
	ExportURL string          `json:"exportUrl,omitempty"`
	Credits   json.RawMessage `json:"credits,omitempty"`
}

// Job tracks one emailed generation.
type Job struct {
	ID           string     `json:"id"`
	Status       JobStatus  `json:"status"`
	Email        string     `json:"email"`
	ProjectName  string     `json:"projectName,omitempty"`
	GenerationID string     `json:"generationId,omitempty"`
	GammaURL     string     `json:"gammaUrl,omitempty"`
	ExportURL    string     `json:"exportUrl,omitempty"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Finish moves the job to a terminal status.
func (j *Job) Finish(status JobStatus, reason string, now time.Time) {
	j.Status = status
	j.Error = reason
	j.UpdatedAt = now
	j.CompletedAt = &now
}
