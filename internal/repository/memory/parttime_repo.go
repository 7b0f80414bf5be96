package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type partTimeJobRepository struct {
	store *Store
}

func NewPartTimeJobRepository(store *Store) domain.PartTimeJobRepository {
	return &partTimeJobRepository{store: store}
}

func (r *partTimeJobRepository) Create(_ context.Context, job *domain.PartTimeJob) error {
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
	s.partTimeJobs[stored.ID] = &stored
	return nil
}

func (r *partTimeJobRepository) GetByID(_ context.Context, id string) (*domain.PartTimeJob, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.partTimeJobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *job
	return &out, nil
}

func (r *partTimeJobRepository) GetAll(_ context.Context) ([]domain.PartTimeJob, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.PartTimeJob, 0, len(s.partTimeJobs))
	for _, job := range s.partTimeJobs {
		jobs = append(jobs, *job)
	}
	sortNewestFirst(jobs, func(j domain.PartTimeJob) int64 { return j.CreatedAt.UnixNano() })
	return jobs, nil
}

func (r *partTimeJobRepository) AddApplicant(_ context.Context, jobID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.partTimeJobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	if contains(job.Applicants, userID) {
		return domain.ErrAlreadyMember
	}
	job.Applicants = append(job.Applicants, userID)
	return nil
}
