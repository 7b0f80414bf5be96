package domain

import (
	"context"
	"time"
)

type Submission struct {
	UserID      string    `json:"userId"`
	Content     string    `json:"content"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Competition struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Difficulty   string       `json:"difficulty"`
	Category     string       `json:"category"`
	Participants []string     `json:"participants"`
	Deadline     time.Time    `json:"deadline"`
	Prize        *string      `json:"prize"`
	Submissions  []Submission `json:"submissions"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type CompetitionRepository interface {
	Create(ctx context.Context, competition *Competition) error
	GetByID(ctx context.Context, id string) (*Competition, error)
	GetAll(ctx context.Context) ([]Competition, error)
	// AddParticipant is an atomic insert-if-absent on participants.
	AddParticipant(ctx context.Context, competitionID, userID string) error
}

type CompetitionUsecase interface {
	CreateCompetition(ctx context.Context, competition *Competition) error
	GetCompetition(ctx context.Context, id string) (*Competition, error)
	ListCompetitions(ctx context.Context) ([]Competition, error)
	Join(ctx context.Context, competitionID, userID string) error
}
