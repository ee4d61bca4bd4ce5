package handlers

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type memoryJobs struct {
	jobs map[uuid.UUID]*models.Job
}

func (m *memoryJobs) Create(_ context.Context, job *models.Job) error {
	m.jobs[job.ID] = job
	return nil
}

func (m *memoryJobs) FindByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	if job, ok := m.jobs[id]; ok {
		return job, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryJobs) FindByTitle(_ context.Context, title string) (*models.Job, error) {
	for _, job := range m.jobs {
		if job.Title == title {
			return job, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type memoryCandidates struct {
	candidates []models.Candidate
}

func (m *memoryCandidates) Upsert(_ context.Context, c *models.Candidate) error {
	m.candidates = append(m.candidates, *c)
	return nil
}

func (m *memoryCandidates) ListByJob(_ context.Context, jobID uuid.UUID) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, c := range m.candidates {
		if c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memorySubmissions struct {
	submissions map[uuid.UUID]*models.Submission
	createErr   error
}

func (m *memorySubmissions) Create(_ context.Context, s *models.Submission) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.submissions[s.ID] = s
	return nil
}

func (m *memorySubmissions) FindByID(_ context.Context, id uuid.UUID) (*models.Submission, error) {
	if s, ok := m.submissions[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memorySubmissions) UpdateStatus(context.Context, uuid.UUID, models.SubmissionStatus) error {
	return nil
}

func (m *memorySubmissions) MarkCompleted(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (m *memorySubmissions) MarkFailed(context.Context, uuid.UUID, string) error {
	return nil
}

func (m *memorySubmissions) FindPending(context.Context, int) ([]models.Submission, error) {
	return nil, nil
}

type memoryStorage struct {
	files   map[string][]byte
	deleted []string
}

func (m *memoryStorage) Save(_ context.Context, filename string, src io.Reader, _ int64, prefix string) (string, string, error) {
	if len(filename) < 4 || filename[len(filename)-4:] != ".pdf" {
		return "", "", services.ErrUnsupportedFileType
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", err
	}
	key := prefix + "_" + filename
	m.files[key] = data
	return key, "/uploads/" + key, nil
}

func (m *memoryStorage) Fetch(_ context.Context, key string) ([]byte, error) {
	data, ok := m.files[key]
	if !ok {
		return nil, errors.New("missing")
	}
	return data, nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memoryStorage) EnsureReady(context.Context) error {
	return nil
}

type recordingWorker struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
}

func (w *recordingWorker) Start(context.Context) {}

func (w *recordingWorker) Stop() {}

func (w *recordingWorker) Enqueue(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.enqueued = append(w.enqueued, id)
}

type cannedEvaluator struct {
	result models.EvaluationResult
	fields models.ResumeFields
}

func (e *cannedEvaluator) Evaluate(_ context.Context, fields models.ResumeFields, _, _ string) models.EvaluationResult {
	e.fields = fields
	return e.result
}
