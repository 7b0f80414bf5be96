package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type jobRepository struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepository{store: store}
}

func (r *jobRepository) Create(_ context.Context, job *domain.Job) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	job.Applicants = []string{}
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}

	stored := *job
	s.jobs[stored.ID] = &stored
	return nil
}

func (r *jobRepository) GetByID(_ context.Context, id string) (*domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *job
	return &out, nil
}

func (r *jobRepository) GetAll(_ context.Context) ([]domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, *job)
	}
	sortNewestFirst(jobs, func(j domain.Job) int64 { return j.CreatedAt.UnixNano() })
	return jobs, nil
}

func (r *jobRepository) GetByPoster(_ context.Context, userID string) ([]domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := []domain.Job{}
	for _, job := range s.jobs {
		if job.PostedBy == userID {
			jobs = append(jobs, *job)
		}
	}
	sortNewestFirst(jobs, func(j domain.Job) int64 { return j.CreatedAt.UnixNano() })
	return jobs, nil
}

// AddApplicant is an atomic insert-if-absent: the membership check and
// the append happen under the same write lock.
func (r *jobRepository) AddApplicant(_ context.Context, jobID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	if contains(job.Applicants, userID) {
		return domain.ErrAlreadyMember
	}
	job.Applicants = append(job.Applicants, userID)
	return nil
}
