package repository

import (
	"context"

	"github.com/tour-planning-service/internal/domain"
)

type RouteRepository interface {
	ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitRoute, error)
	// FindByStops returns the route for the exact ordered (from, to) pair, or
	// (nil, nil) when no such route exists.
	FindByStops(ctx context.Context, circuitID, fromStopID, toStopID int64) (*domain.CircuitRoute, error)
	// Save inserts the route when ID is zero, updates it otherwise.
	Save(ctx context.Context, route *domain.CircuitRoute) (*domain.CircuitRoute, error)
}
