package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/realty-decks/deck-backend/internal/deck/catalog"
	deck "github.com/realty-decks/deck-backend/internal/deck/domain"
	"github.com/realty-decks/deck-backend/internal/gamma"
	"github.com/realty-decks/deck-backend/internal/generation/domain"
	"github.com/realty-decks/deck-backend/internal/logging"
	"github.com/realty-decks/deck-backend/internal/notify"
)

const (
	DefaultSyncAttempts  = 60
	DefaultAsyncAttempts = 90
	defaultProjectName   = "Your Investment Opportunity"
)

type GammaClient interface {
	Configured() bool
	CreateGeneration(ctx context.Context, req gamma.GenerationRequest) (string, error)
	Wait(ctx context.Context, id string, maxAttempts int) (*gamma.Generation, error)
}

type Notifier interface {
	SendDeckReady(ctx context.Context, to string, d notify.DeckReady) error
	SendDeckFailed(ctx context.Context, to string, data deck.ProjectData, reason string) error
}

type JobStore interface {
	Save(ctx context.Context, job *domain.Job) error
	Get(ctx context.Context, id string) (*domain.Job, error)
	ListActive(ctx context.Context) ([]*domain.Job, error)
}

type Options struct {
	Figures       catalog.Figures
	SyncAttempts  int
	AsyncAttempts int
}

// GenerationService drives Gamma generations and the emails that follow.
type GenerationService struct {
	gamma    GammaClient
	notifier Notifier
	jobs     JobStore
	opts     Options
	now      func() time.Time

	wg sync.WaitGroup
}

func NewGenerationService(g GammaClient, n Notifier, jobs JobStore, opts Options) *GenerationService {
	if opts.SyncAttempts <= 0 {
		opts.SyncAttempts = DefaultSyncAttempts
	}
	if opts.AsyncAttempts <= 0 {
		opts.AsyncAttempts = DefaultAsyncAttempts
	}
	if opts.Figures.NOI.Values == nil {
		opts.Figures = catalog.DefaultFigures()
	}
	return &GenerationService{
		gamma:    g,
		notifier: n,
		jobs:     jobs,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *GenerationService) start(ctx context.Context, req domain.Request) (string, error) {
	prompt := gamma.BuildPrompt(req.ProjectData, req.CompanyName, s.opts.Figures)
	return s.gamma.CreateGeneration(ctx, gamma.NewDeckRequest(prompt))
}

// Generate runs a generation to completion within the request. When an
// email is given and Gamma returned a link, the deck is also emailed;
// email failures are logged and do not fail the generation.
func (s *GenerationService) Generate(ctx context.Context, req domain.Request) (*domain.Result, error) {
	logger := logging.NewLogger(ctx)
	if !s.gamma.Configured() {
		return nil, gamma.ErrNotConfigured
	}

	id, err := s.start(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.LogInfof("generate", "gamma generation started generation_id=%s", id)

	g, err := s.gamma.Wait(ctx, id, s.opts.SyncAttempts)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Email) != "" && g.GammaURL != "" {
		err := s.notifier.SendDeckReady(ctx, req.Email, notify.DeckReady{
			Data:        req.ProjectData,
			CompanyName: req.CompanyName,
			GammaURL:    g.GammaURL,
			ExportURL:   g.ExportURL,
		})
		if err != nil {
			logger.LogWarnf("generate", "deck ready email failed: %v", err)
		}
	}

	return &domain.Result{
		Success:   true,
		GammaURL:  g.GammaURL,
		ExportURL: g.ExportURL,
		Credits:   g.Credits,
	}, nil
}

// Enqueue records a job and runs the generation in the background. The
// outcome reaches the user by email; the job can also be polled.
func (s *GenerationService) Enqueue(ctx context.Context, req domain.Request) (*domain.Job, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, domain.ErrEmailRequired
	}

	now := s.now()
	job := &domain.Job{
		Status:      domain.StatusQueued,
		Email:       req.Email,
		ProjectName: projectName(req),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	queued := *job
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(bg, job, req)
	}()
	return &queued, nil
}

func (s *GenerationService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.Get(ctx, id)
}

// Wait blocks until background generations finish or ctx is done.
func (s *GenerationService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *GenerationService) run(ctx context.Context, job *domain.Job, req domain.Request) {
	logger := logging.NewLogger(ctx).With("job_id", job.ID)
	defer func() {
		if r := recover(); r != nil {
			logger.LogError("generate_async", fmt.Errorf("panic: %v", r))
			s.fail(ctx, job, req, domain.ReasonUnexpected)
		}
	}()

	job.Status = domain.StatusRunning
	job.UpdatedAt = s.now()
	s.save(ctx, job)

	if !s.gamma.Configured() {
		logger.LogError("generate_async", gamma.ErrNotConfigured)
		s.fail(ctx, job, req, domain.ReasonNotConfigured)
		return
	}

	id, err := s.start(ctx, req)
	if err != nil {
		logger.LogError("generate_async", err)
		s.fail(ctx, job, req, domain.ReasonStartFailed)
		return
	}
	job.GenerationID = id
	job.UpdatedAt = s.now()
	s.save(ctx, job)

	g, err := s.gamma.Wait(ctx, id, s.opts.AsyncAttempts)
	switch {
	case errors.Is(err, gamma.ErrTimeout), errors.Is(err, gamma.ErrFailed):
		logger.LogError("generate_async", err)
		s.fail(ctx, job, req, domain.ReasonTooLong)
		return
	case err != nil:
		logger.LogError("generate_async", err)
		s.fail(ctx, job, req, domain.ReasonUnexpected)
		return
	}

	job.GammaURL = g.GammaURL
	job.ExportURL = g.ExportURL
	job.Finish(domain.StatusCompleted, "", s.now())
	s.save(ctx, job)

	err = s.notifier.SendDeckReady(ctx, job.Email, notify.DeckReady{
		Data:        req.ProjectData,
		CompanyName: req.CompanyName,
		GammaURL:    g.GammaURL,
		ExportURL:   g.ExportURL,
	})
	if err != nil {
		logger.LogWarnf("generate_async", "deck ready email failed: %v", err)
		return
	}
	logger.LogInfo("generate_async", "deck emailed")
}

func (s *GenerationService) fail(ctx context.Context, job *domain.Job, req domain.Request, reason string) {
	job.Finish(domain.StatusFailed, reason, s.now())
	s.save(ctx, job)
	s.notifyFailed(ctx, job, req.ProjectData, reason)
}

func (s *GenerationService) notifyFailed(ctx context.Context, job *domain.Job, data deck.ProjectData, reason string) {
	err := s.notifier.SendDeckFailed(ctx, job.Email, data, reason)
	if err != nil {
		logging.NewLogger(ctx).LogWarnf("generate_async", "failure email failed job_id=%s: %v", job.ID, err)
	}
}

func (s *GenerationService) save(ctx context.Context, job *domain.Job) {
	if err := s.jobs.Save(ctx, job); err != nil {
		logging.NewLogger(ctx).LogWarnf("generate_async", "save job %s: %v", job.ID, err)
	}
}

// SweepStale fails active jobs that have not moved for longer than
// staleAfter, typically because the process running them exited, and
// emails the requester as a timed-out generation would. It returns how many
// jobs were failed.
func (s *GenerationService) SweepStale(ctx context.Context, staleAfter time.Duration) (int, error) {
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := s.now().Add(-staleAfter)
	n := 0
	for _, job := range jobs {
		if job.UpdatedAt.After(cutoff) {
			continue
		}
		job.Finish(domain.StatusFailed, domain.ReasonTooLong, s.now())
		if err := s.jobs.Save(ctx, job); err != nil {
			return n, err
		}
		var data deck.ProjectData
		if job.ProjectName != defaultProjectName {
			data.ProjectName = job.ProjectName
		}
		s.notifyFailed(ctx, job, data, domain.ReasonTooLong)
		n++
	}
	return n, nil
}

func projectName(req domain.Request) string {
	if v := strings.TrimSpace(req.ProjectData.ProjectName); v != "" {
		return v
	}
	return defaultProjectName
}
