package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(id uuid.UUID)
}

type WorkerOptions struct {
	Concurrency  int
	QueueSize    int
	PollInterval time.Duration
}

type worker struct {
	submissions repositories.SubmissionRepository
	screening   ScreeningService
	queue       chan uuid.UUID
	opts        WorkerOptions
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewWorker(submissions repositories.SubmissionRepository, screening ScreeningService, opts WorkerOptions) Worker {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 100
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}

	return &worker{
		submissions: submissions,
		screening:   screening,
		queue:       make(chan uuid.UUID, opts.QueueSize),
		opts:        opts,
		stopChan:    make(chan struct{}),
		inFlight:    make(map[uuid.UUID]struct{}),
	}
}

func (w *worker) Start(ctx context.Context) {
	logger.Info().Int("concurrency", w.opts.Concurrency).Msg("starting worker")

	for i := 0; i < w.opts.Concurrency; i++ {
		w.wg.Add(1)
		go w.process(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPending(ctx)
}

func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		logger.Info().Msg("stopping worker")
		close(w.stopChan)
	})
	w.wg.Wait()
	logger.Info().Msg("worker stopped")
}

// Enqueue schedules a submission. Ids already queued or running are ignored.
func (w *worker) Enqueue(id uuid.UUID) {
	w.mu.Lock()
	if _, ok := w.inFlight[id]; ok {
		w.mu.Unlock()
		return
	}
	w.inFlight[id] = struct{}{}
	w.mu.Unlock()

	select {
	case w.queue <- id:
		logger.Debug().Str("submission_id", id.String()).Msg("submission enqueued")
	case <-w.stopChan:
		w.release(id)
		logger.Warn().Str("submission_id", id.String()).Msg("worker stopped, submission left queued")
	default:
		w.release(id)
		logger.Warn().Str("submission_id", id.String()).Msg("queue full, submission left for the poller")
	}
}

func (w *worker) release(id uuid.UUID) {
	w.mu.Lock()
	delete(w.inFlight, id)
	w.mu.Unlock()
}

func (w *worker) process(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case id := <-w.queue:
			if err := w.screening.ProcessSubmission(ctx, id); err != nil {
				logger.Error().Err(err).Int("worker", workerID).Str("submission_id", id.String()).Msg("submission failed")
			}
			w.release(id)
		}
	}
}

// pollPending picks up submissions that were queued while no worker was
// listening, e.g. before a restart.
func (w *worker) pollPending(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			pending, err := w.submissions.FindPending(ctx, w.opts.QueueSize/2+1)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to fetch pending submissions")
				continue
			}

			for _, submission := range pending {
				w.Enqueue(submission.ID)
			}
		}
	}
}
