package domain

import (
	"context"
	"time"
)

// User roles.
const (
	RoleUser     = "user"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
}

type User struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Password    string       `json:"-"` // bcrypt hash, never serialized
	Role        string       `json:"role"`
	FullName    *string      `json:"fullName"`
	Bio         *string      `json:"bio"`
	Avatar      *string      `json:"avatar"`
	Skills      []string     `json:"skills"`
	Experience  *string      `json:"experience"`
	SocialLinks *SocialLinks `json:"socialLinks"`
	Location    *string      `json:"location"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// RegisterInput carries the validated registration payload into the
// auth usecase. Password is the plain text, hashed before storage.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        string
	FullName    *string
	Bio         *string
	Avatar      *string
	Skills      []string
	Experience  *string
	SocialLinks *SocialLinks
	Location    *string
}

type UserRepository interface {
	// Create stamps ID/CreatedAt and inserts the user. Username and
	// email uniqueness is checked and committed atomically; returns
	// ErrEmailTaken or ErrUsernameTaken on conflict.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	CurrentUser(ctx context.Context, id string) (*User, error)
}
