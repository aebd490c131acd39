package repository

import (
	"context"

	"github.com/tour-planning-service/internal/domain"
)

type CircuitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Circuit, error)
	ListByOwner(ctx context.Context, userID int64, cityID *int64) ([]*domain.Circuit, error)
	Create(ctx context.Context, circuit *domain.Circuit) (*domain.Circuit, error)
	Update(ctx context.Context, circuit *domain.Circuit) error
	Delete(ctx context.Context, id int64) error

	// CreateWithStops persists a circuit together with its full stop set in a
	// single transaction. Either everything commits or nothing does; used by
	// AI generation so a circuit can never be observed without stops.
	CreateWithStops(ctx context.Context, circuit *domain.Circuit, stops []*domain.CircuitStop) (*domain.Circuit, error)
}
