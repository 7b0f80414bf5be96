package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type connectionRepository struct {
	store *Store
}

func NewConnectionRepository(store *Store) domain.ConnectionRepository {
	return &connectionRepository{store: store}
}

func (r *connectionRepository) Create(_ context.Context, connection *domain.Connection) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	connection.ID = uuid.NewString()
	connection.CreatedAt = time.Now()
	if connection.Status == "" {
		connection.Status = domain.ConnectionStatusPending
	}

	stored := *connection
	s.connections[stored.ID] = &stored
	return nil
}

func (r *connectionRepository) GetByUser(_ context.Context, userID string) ([]domain.Connection, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var connections []domain.Connection
	for _, connection := range s.connections {
		if connection.UserID == userID || connection.ConnectedUserID == userID {
			connections = append(connections, *connection)
		}
	}
	return connections, nil
}
