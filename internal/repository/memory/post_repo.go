package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type postRepository struct {
	store *Store
}

func NewPostRepository(store *Store) domain.PostRepository {
	return &postRepository{store: store}
}

func (r *postRepository) Create(_ context.Context, post *domain.Post) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	post.Likes = []string{}
	post.Comments = []domain.Comment{}

	stored := *post
	s.posts[stored.ID] = &stored
	return nil
}

func (r *postRepository) GetByID(_ context.Context, id string) (*domain.Post, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *post
	return &out, nil
}

func (r *postRepository) GetAll(_ context.Context) ([]domain.Post, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]domain.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, *post)
	}
	sortNewestFirst(posts, func(p domain.Post) int64 { return p.CreatedAt.UnixNano() })
	return posts, nil
}

// ToggleLike flips membership: present ids are removed, absent ids
// appended. The reported bool is the resulting state.
func (r *postRepository) ToggleLike(_ context.Context, postID, userID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if contains(post.Likes, userID) {
		kept := make([]string, 0, len(post.Likes)-1)
		for _, id := range post.Likes {
			if id != userID {
				kept = append(kept, id)
			}
		}
		post.Likes = kept
		return false, nil
	}
	post.Likes = append(post.Likes, userID)
	return true, nil
}

func (r *postRepository) AddComment(_ context.Context, postID string, comment domain.Comment) (*domain.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	post.Comments = append(post.Comments, comment)

	out := *post
	return &out, nil
}
