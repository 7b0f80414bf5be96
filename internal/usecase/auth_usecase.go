package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/password"
	"go-careerhub-backend/pkg/token"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register hashes the password, creates the user and issues a session
// token. Duplicate email/username surfaces as 400, matching the API
// contract; the uniqueness check itself is atomic in the repository.
func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, string, error) {
	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    hashed,
		Role:        in.Role,
		FullName:    in.FullName,
		Bio:         in.Bio,
		Avatar:      in.Avatar,
		Skills:      in.Skills,
		Experience:  in.Experience,
		SocialLinks: in.SocialLinks,
		Location:    in.Location,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, "", apperror.BadRequest("Email already registered")
		case errors.Is(err, domain.ErrUsernameTaken):
			return nil, "", apperror.BadRequest("Username already taken")
		default:
			return nil, "", apperror.Internal(err)
		}
	}

	signed, err := u.tokens.Generate(user)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, signed, nil
}

// Login deliberately returns the same message for unknown email and
// wrong password.
func (u *authUsecase) Login(ctx context.Context, email, pass string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}
	if !password.Compare(pass, user.Password) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	signed, err := u.tokens.Generate(user)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, signed, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
