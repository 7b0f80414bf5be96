package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type portfolioRepository struct {
	store *Store
}

func NewPortfolioRepository(store *Store) domain.PortfolioRepository {
	return &portfolioRepository{store: store}
}

func (r *portfolioRepository) GetByUserID(_ context.Context, userID string) (*domain.Portfolio, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	portfolio, ok := s.portfolios[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *portfolio
	return &out, nil
}

// GetOrCreate returns the user's portfolio, creating an empty one on
// first access. Lookup and creation run under one write lock, so two
// concurrent first accesses yield the same portfolio.
func (r *portfolioRepository) GetOrCreate(_ context.Context, userID string) (*domain.Portfolio, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolio := r.getOrCreateLocked(userID)
	out := *portfolio
	return &out, nil
}

func (r *portfolioRepository) AddProject(_ context.Context, userID string, project domain.Project) (*domain.Portfolio, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolio := r.getOrCreateLocked(userID)
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	portfolio.Projects = append(portfolio.Projects, project)

	out := *portfolio
	return &out, nil
}

// getOrCreateLocked requires the store write lock to be held.
func (r *portfolioRepository) getOrCreateLocked(userID string) *domain.Portfolio {
	s := r.store
	if portfolio, ok := s.portfolios[userID]; ok {
		return portfolio
	}
	portfolio := &domain.Portfolio{
		ID:           uuid.NewString(),
		UserID:       userID,
		Projects:     []domain.Project{},
		Certificates: []domain.Certificate{},
		ViewCount:    0,
		Likes:        0,
		CreatedAt:    time.Now(),
	}
	s.portfolios[userID] = portfolio
	return portfolio
}
