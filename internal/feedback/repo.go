// Package feedback collects user feedback about generated decks.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Feedback struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Message     string    `json:"feedback"`
	ProjectName string    `json:"projectName,omitempty"`
	SubmittedAt time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"createdAt"`
}

const schema = `
create table if not exists deck_feedback (
  id           uuid primary key,
  category     text not null,
  message      text not null,
  project_name text not null default '',
  submitted_at timestamptz not null,
  created_at   timestamptz not null default now()
);
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// EnsureSchema creates the feedback table when it is missing.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create feedback table: %w", err)
	}
	return nil
}

func (r *Repo) Insert(ctx context.Context, f *Feedback) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	const q = `
insert into deck_feedback (id, category, message, project_name, submitted_at)
values ($1::uuid, $2, $3, $4, $5)
returning created_at;
`
	err := r.db.QueryRow(ctx, q, f.ID, f.Category, f.Message, f.ProjectName, f.SubmittedAt).
		Scan(&f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *Repo) ListRecent(ctx context.Context, limit int) ([]Feedback, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const q = `
select id::text, category, message, project_name, submitted_at, created_at
from deck_feedback
order by created_at desc
limit $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Feedback, 0, limit)
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Category, &f.Message, &f.ProjectName, &f.SubmittedAt, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
