package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type partTimeJobUsecase struct {
	partTimeRepo domain.PartTimeJobRepository
}

func NewPartTimeJobUsecase(partTimeRepo domain.PartTimeJobRepository) domain.PartTimeJobUsecase {
	return &partTimeJobUsecase{partTimeRepo: partTimeRepo}
}

func (u *partTimeJobUsecase) CreateJob(ctx context.Context, userID string, job *domain.PartTimeJob) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Pay < 0 {
		return apperror.BadRequest("Pay cannot be negative")
	}

	job.PostedBy = userID

	return u.partTimeRepo.Create(ctx, job)
}

func (u *partTimeJobUsecase) GetJob(ctx context.Context, id string) (*domain.PartTimeJob, error) {
	job, err := u.partTimeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *partTimeJobUsecase) ListJobs(ctx context.Context) ([]domain.PartTimeJob, error) {
	return u.partTimeRepo.GetAll(ctx)
}

func (u *partTimeJobUsecase) Apply(ctx context.Context, jobID, userID string) error {
	if err := u.partTimeRepo.AddApplicant(ctx, jobID, userID); err != nil {
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
