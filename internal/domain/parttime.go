package domain

import (
	"context"
	"time"
)

type PartTimeJob struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Type        string    `json:"type"`
	Pay         int       `json:"pay"`
	Location    string    `json:"location"`
	Distance    *string   `json:"distance"`
	PostedBy    string    `json:"postedBy"`
	Applicants  []string  `json:"applicants"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PartTimeJobRepository interface {
	Create(ctx context.Context, job *PartTimeJob) error
	GetByID(ctx context.Context, id string) (*PartTimeJob, error)
	GetAll(ctx context.Context) ([]PartTimeJob, error)
	// Same applicant-uniqueness contract as JobRepository.AddApplicant.
	AddApplicant(ctx context.Context, jobID, userID string) error
}

type PartTimeJobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *PartTimeJob) error
	GetJob(ctx context.Context, id string) (*PartTimeJob, error)
	ListJobs(ctx context.Context) ([]PartTimeJob, error)
	Apply(ctx context.Context, jobID, userID string) error
}
