package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type portfolioUsecase struct {
	portfolioRepo domain.PortfolioRepository
	validate      *validator.Validate
}

func NewPortfolioUsecase(portfolioRepo domain.PortfolioRepository, validate *validator.Validate) domain.PortfolioUsecase {
	return &portfolioUsecase{portfolioRepo: portfolioRepo, validate: validate}
}

// MyPortfolio is the explicit get-or-create read: first access creates
// an empty portfolio, later accesses return the same one.
func (u *portfolioUsecase) MyPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	portfolio, err := u.portfolioRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return portfolio, nil
}

func (u *portfolioUsecase) AddProject(ctx context.Context, userID string, project domain.Project) (*domain.Portfolio, error) {
	if err := u.validate.Struct(project); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	portfolio, err := u.portfolioRepo.AddProject(ctx, userID, project)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return portfolio, nil
}
