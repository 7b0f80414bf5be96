package domain

import (
	"context"
	"time"
)

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostWithAuthor decorates a post with the poster's public profile
// fields, resolved at read time rather than stored redundantly.
type PostWithAuthor struct {
	Post
	Username     string  `json:"username"`
	UserFullName *string `json:"userFullName"`
	UserAvatar   *string `json:"userAvatar"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetAll(ctx context.Context) ([]Post, error)
	// ToggleLike flips userID's membership in the like list and reports
	// the resulting state (true = liked). Unlike the join mutators,
	// likes are reversible.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID string, comment Comment) (*Post, error)
}

type PostUsecase interface {
	CreatePost(ctx context.Context, userID, content string, imageURL *string) (*Post, error)
	ListPosts(ctx context.Context) ([]PostWithAuthor, error)
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID, userID, content string) (*Post, error)
}
