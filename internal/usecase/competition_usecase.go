package usecase

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type competitionUsecase struct {
	competitionRepo domain.CompetitionRepository
}

func NewCompetitionUsecase(competitionRepo domain.CompetitionRepository) domain.CompetitionUsecase {
	return &competitionUsecase{competitionRepo: competitionRepo}
}

func (u *competitionUsecase) CreateCompetition(ctx context.Context, competition *domain.Competition) error {
	if competition.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !competition.Deadline.After(time.Now()) {
		return apperror.BadRequest("Deadline must be in the future")
	}

	return u.competitionRepo.Create(ctx, competition)
}

func (u *competitionUsecase) GetCompetition(ctx context.Context, id string) (*domain.Competition, error) {
	competition, err := u.competitionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Competition not found")
	}
	return competition, nil
}

func (u *competitionUsecase) ListCompetitions(ctx context.Context) ([]domain.Competition, error) {
	return u.competitionRepo.GetAll(ctx)
}

func (u *competitionUsecase) Join(ctx context.Context, competitionID, userID string) error {
	if err := u.competitionRepo.AddParticipant(ctx, competitionID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Competition not found")
		case errors.Is(err, domain.ErrAlreadyMember):
			return apperror.BadRequest("Already joined")
		default:
			return apperror.Internal(err)
		}
	}
	return nil
}
