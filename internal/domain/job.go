package domain

import (
	"context"
	"time"
)

const JobStatusOpen = "open"

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	CompanyLogo *string   `json:"companyLogo"`
	Budget      *int      `json:"budget"`
	Location    *string   `json:"location"`
	Type        string    `json:"type"`
	Skills      []string  `json:"skills"`
	PostedBy    string    `json:"postedBy"`
	Applicants  []string  `json:"applicants"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// GetAll returns jobs sorted by creation time, newest first.
	GetAll(ctx context.Context) ([]Job, error)
	GetByPoster(ctx context.Context, userID string) ([]Job, error)
	// AddApplicant appends userID to the applicant list if absent.
	// Returns ErrNotFound for an unknown job, ErrAlreadyMember when the
	// user already applied. Check and append are a single atomic step.
	AddApplicant(ctx context.Context, jobID, userID string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	ListJobsByPoster(ctx context.Context, userID string) ([]Job, error)
	Apply(ctx context.Context, jobID, userID string) error
}
