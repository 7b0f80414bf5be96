package domain

import (
	"context"
	"time"
)

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Image       *string  `json:"image,omitempty"`
	LiveURL     *string  `json:"liveUrl,omitempty" validate:"omitempty,url"`
	GithubURL   *string  `json:"githubUrl,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

type Certificate struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Portfolio is 1:1 with User (keyed by UserID once created).
type Portfolio struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Title        *string       `json:"title"`
	Tagline      *string       `json:"tagline"`
	Projects     []Project     `json:"projects"`
	Certificates []Certificate `json:"certificates"`
	ViewCount    int           `json:"viewCount"`
	Likes        int           `json:"likes"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type PortfolioRepository interface {
	// GetByUserID is a pure read; ErrNotFound when the user has no
	// portfolio yet. Creation is an explicit, separate operation.
	GetByUserID(ctx context.Context, userID string) (*Portfolio, error)
	// GetOrCreate returns the user's portfolio, atomically creating an
	// empty one (viewCount=0, likes=0, no projects) on first access.
	GetOrCreate(ctx context.Context, userID string) (*Portfolio, error)
	// AddProject appends to the project list, creating the portfolio if
	// absent, and returns the updated portfolio.
	AddProject(ctx context.Context, userID string, project Project) (*Portfolio, error)
}

type PortfolioUsecase interface {
	MyPortfolio(ctx context.Context, userID string) (*Portfolio, error)
	AddProject(ctx context.Context, userID string, project Project) (*Portfolio, error)
}
