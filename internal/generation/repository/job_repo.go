package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/realty-decks/deck-backend/internal/generation/domain"
)

const (
	jobKeyPrefix  = "deck:job:"        // Job data: deck:job:{job_id}
	activeJobsKey = "deck:jobs:active" // Set of queued or running job IDs
	DefaultJobTTL = 7 * 24 * time.Hour // TTL for job data (7 days)
)

// JobRepository handles Redis operations for generation jobs
type JobRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewJobRepository(client *redis.Client, ttl time.Duration) *JobRepository {
	if ttl <= 0 {
		ttl = DefaultJobTTL
	}
	return &JobRepository{client: client, ttl: ttl}
}

// Save writes the job and keeps the active index in step with its status.
func (r *JobRepository) Save(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = now
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.jobKey(job.ID), data, r.ttl)
	if job.Status.Terminal() {
		pipe.SRem(ctx, activeJobsKey, job.ID)
	} else {
		pipe.SAdd(ctx, activeJobsKey, job.ID)
		pipe.Expire(ctx, activeJobsKey, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (r *JobRepository) Get(ctx context.Context, id string) (*domain.Job, error) {
	data, err := r.client.Get(ctx, r.jobKey(id)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job domain.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}

// ListActive returns the jobs not yet completed or failed. IDs whose data
// expired are pruned from the index.
func (r *JobRepository) ListActive(ctx context.Context) ([]*domain.Job, error) {
	ids, err := r.client.SMembers(ctx, activeJobsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	jobs := make([]*domain.Job, 0, len(ids))
	for _, id := range ids {
		job, err := r.Get(ctx, id)
		if err == domain.ErrJobNotFound {
			r.client.SRem(ctx, activeJobsKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (r *JobRepository) jobKey(id string) string {
	return jobKeyPrefix + id
}
