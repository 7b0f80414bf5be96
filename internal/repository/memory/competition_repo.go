package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type competitionRepository struct {
	store *Store
}

func NewCompetitionRepository(store *Store) domain.CompetitionRepository {
	return &competitionRepository{store: store}
}

func (r *competitionRepository) Create(_ context.Context, competition *domain.Competition) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	competition.ID = uuid.NewString()
	competition.CreatedAt = time.Now()
	competition.Participants = []string{}
	competition.Submissions = []domain.Submission{}

	stored := *competition
	s.competitions[stored.ID] = &stored
	return nil
}

func (r *competitionRepository) GetByID(_ context.Context, id string) (*domain.Competition, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	competition, ok := s.competitions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *competition
	return &out, nil
}

func (r *competitionRepository) GetAll(_ context.Context) ([]domain.Competition, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	competitions := make([]domain.Competition, 0, len(s.competitions))
	for _, competition := range s.competitions {
		competitions = append(competitions, *competition)
	}
	sortNewestFirst(competitions, func(c domain.Competition) int64 { return c.CreatedAt.UnixNano() })
	return competitions, nil
}

func (r *competitionRepository) AddParticipant(_ context.Context, competitionID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	competition, ok := s.competitions[competitionID]
	if !ok {
		return domain.ErrNotFound
	}
	if contains(competition.Participants, userID) {
		return domain.ErrAlreadyMember
	}
	competition.Participants = append(competition.Participants, userID)
	return nil
}
