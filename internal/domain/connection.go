package domain

import (
	"context"
	"time"
)

const ConnectionStatusPending = "pending"

type Connection struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ConnectedUserID string    `json:"connectedUserId"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ConnectionRepository interface {
	Create(ctx context.Context, connection *Connection) error
	// GetByUser returns connections where userID appears on either side.
	GetByUser(ctx context.Context, userID string) ([]Connection, error)
}

type ConnectionUsecase interface {
	Connect(ctx context.Context, userID, connectedUserID string) (*Connection, error)
	ListByUser(ctx context.Context, userID string) ([]Connection, error)
}
