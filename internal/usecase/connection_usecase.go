package usecase

import (
	"context"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type connectionUsecase struct {
	connectionRepo domain.ConnectionRepository
	userRepo       domain.UserRepository
}

func NewConnectionUsecase(connectionRepo domain.ConnectionRepository, userRepo domain.UserRepository) domain.ConnectionUsecase {
	return &connectionUsecase{connectionRepo: connectionRepo, userRepo: userRepo}
}

func (u *connectionUsecase) Connect(ctx context.Context, userID, connectedUserID string) (*domain.Connection, error) {
	if connectedUserID == "" {
		return nil, apperror.BadRequest("connectedUserId is required")
	}
	if connectedUserID == userID {
		return nil, apperror.BadRequest("Cannot connect to yourself")
	}
	if _, err := u.userRepo.GetByID(ctx, connectedUserID); err != nil {
		return nil, apperror.NotFound("User not found")
	}

	connection := &domain.Connection{
		UserID:          userID,
		ConnectedUserID: connectedUserID,
	}
	if err := u.connectionRepo.Create(ctx, connection); err != nil {
		return nil, apperror.Internal(err)
	}
	return connection, nil
}

func (u *connectionUsecase) ListByUser(ctx context.Context, userID string) ([]domain.Connection, error) {
	return u.connectionRepo.GetByUser(ctx, userID)
}
