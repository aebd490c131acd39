package repository

import (
	"context"

	"github.com/tour-planning-service/internal/domain"
)

type SessionRepository interface {
	// ListByCircuit returns sessions ordered by start date ascending.
	ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitSession, error)
	GetByID(ctx context.Context, id int64) (*domain.CircuitSession, error)
	Create(ctx context.Context, session *domain.CircuitSession) (*domain.CircuitSession, error)
	Update(ctx context.Context, session *domain.CircuitSession) error
	Delete(ctx context.Context, id int64) error
}
