package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Budget != nil && *job.Budget < 0 {
		return apperror.BadRequest("Budget cannot be negative")
	}

	// Poster comes from the verified token, never from the payload
	job.PostedBy = userID

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.GetAll(ctx)
}

func (u *jobUsecase) ListJobsByPoster(ctx context.Context, userID string) ([]domain.Job, error) {
	return u.jobRepo.GetByPoster(ctx, userID)
}

// Apply delegates to the repository's atomic insert-if-absent and maps
// the outcomes onto the API error taxonomy.
func (u *jobUsecase) Apply(ctx context.Context, jobID, userID string) error {
	if err := u.jobRepo.AddApplicant(ctx, jobID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Job not found")
		case errors.Is(err, domain.ErrAlreadyMember):
			return apperror.BadRequest("Already applied")
		default:
			return apperror.Internal(err)
		}
	}
	return nil
}
