package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

// stubJudge answers scoring and cover-letter prompts separately and records
// every request.
type stubJudge struct {
	mu sync.Mutex

	scoring        string
	scoringErr     error
	coverLetter    string
	coverLetterErr error
	other          string

	prompts []string
	systems []string
}

func (s *stubJudge) Complete(_ context.Context, systemInstruction, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	s.systems = append(s.systems, systemInstruction)

	switch {
	case strings.Contains(prompt, "SCORING RUBRIC"):
		return s.scoring, s.scoringErr
	case strings.Contains(prompt, "COVER LETTER:"):
		return s.coverLetter, s.coverLetterErr
	default:
		return s.other, nil
	}
}

func (s *stubJudge) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

func (s *stubJudge) promptContaining(marker string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.prompts {
		if strings.Contains(p, marker) {
			return p
		}
	}
	return ""
}

// sequenceJudge returns its responses in order, then repeats the last one.
type sequenceJudge struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
}

func (s *sequenceJudge) Complete(ctx context.Context, _, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.responses[i], s.errs[i]
}

type fakeSubmissionRepo struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*models.Submission
}

func newFakeSubmissionRepo(subs ...*models.Submission) *fakeSubmissionRepo {
	repo := &fakeSubmissionRepo{submissions: make(map[uuid.UUID]*models.Submission)}
	for _, s := range subs {
		repo.submissions[s.ID] = s
	}
	return repo
}

func (f *fakeSubmissionRepo) Create(_ context.Context, s *models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = models.StatusQueued
	}
	f.submissions[s.ID] = s
	return nil
}

func (f *fakeSubmissionRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.submissions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSubmissionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.SubmissionStatus) error {
	return f.with(id, func(s *models.Submission) { s.Status = status })
}

func (f *fakeSubmissionRepo) MarkCompleted(_ context.Context, id, candidateID uuid.UUID) error {
	return f.with(id, func(s *models.Submission) {
		s.Status = models.StatusCompleted
		s.CandidateID = &candidateID
	})
}

func (f *fakeSubmissionRepo) MarkFailed(_ context.Context, id uuid.UUID, msg string) error {
	return f.with(id, func(s *models.Submission) {
		s.Status = models.StatusFailed
		s.ErrorMessage = &msg
	})
}

func (f *fakeSubmissionRepo) FindPending(_ context.Context, limit int) ([]models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Submission
	for _, s := range f.submissions {
		if s.Status == models.StatusQueued && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) get(id uuid.UUID) models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.submissions[id]
}

func (f *fakeSubmissionRepo) with(id uuid.UUID, fn func(*models.Submission)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.submissions[id]
	if !ok {
		return repositories.ErrNotFound
	}
	fn(s)
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func (f *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) FindByTitle(_ context.Context, title string) (*models.Job, error) {
	for _, job := range f.jobs {
		if job.Title == title {
			return job, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeCandidateRepo struct {
	mu       sync.Mutex
	upserted []*models.Candidate
	err      error
}

func (f *fakeCandidateRepo) Upsert(_ context.Context, c *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.upserted = append(f.upserted, c)
	return nil
}

func (f *fakeCandidateRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Candidate
	for _, c := range f.upserted {
		if c.JobID == jobID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeExtractor struct {
	fields models.ResumeFields
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (models.ResumeFields, error) {
	return f.fields, f.err
}

type fakeEvaluator struct {
	result         models.EvaluationResult
	jobDescription string
	coverLetter    string
}

func (f *fakeEvaluator) Evaluate(_ context.Context, _ models.ResumeFields, jobDescription, coverLetter string) models.EvaluationResult {
	f.jobDescription = jobDescription
	f.coverLetter = coverLetter
	return f.result
}
