package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type postUsecase struct {
	postRepo domain.PostRepository
	userRepo domain.UserRepository
}

func NewPostUsecase(postRepo domain.PostRepository, userRepo domain.UserRepository) domain.PostUsecase {
	return &postUsecase{postRepo: postRepo, userRepo: userRepo}
}

func (u *postUsecase) CreatePost(ctx context.Context, userID, content string, imageURL *string) (*domain.Post, error) {
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}

	post := &domain.Post{
		UserID:   userID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	return post, nil
}

// ListPosts resolves each poster's public profile fields at read time.
// A post whose author is gone still renders, attributed to "Unknown".
func (u *postUsecase) ListPosts(ctx context.Context) ([]domain.PostWithAuthor, error) {
	posts, err := u.postRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	decorated := make([]domain.PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		item := domain.PostWithAuthor{Post: post, Username: "Unknown"}
		if user, err := u.userRepo.GetByID(ctx, post.UserID); err == nil {
			item.Username = user.Username
			item.UserFullName = user.FullName
			item.UserAvatar = user.Avatar
		}
		decorated = append(decorated, item)
	}
	return decorated, nil
}

func (u *postUsecase) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	liked, err := u.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, apperror.NotFound("Post not found")
		}
		return false, apperror.Internal(err)
	}
	return liked, nil
}

func (u *postUsecase) AddComment(ctx context.Context, postID, userID, content string) (*domain.Post, error) {
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}

	// Comments are denormalized with the commenter's username so the
	// feed does not re-resolve them per render.
	username := "Unknown"
	if user, err := u.userRepo.GetByID(ctx, userID); err == nil {
		username = user.Username
	}

	post, err := u.postRepo.AddComment(ctx, postID, domain.Comment{
		UserID:   userID,
		Username: username,
		Content:  content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, apperror.Internal(err)
	}
	return post, nil
}
