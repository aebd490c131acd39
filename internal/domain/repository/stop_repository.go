package repository

import (
	"context"

	"github.com/tour-planning-service/internal/domain"
)

type StopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CircuitStop, error)
	// ListByCircuit returns the circuit's stops ordered by position ascending.
	ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitStop, error)
	CountByCircuit(ctx context.Context, circuitID int64) (int, error)
	MaxPosition(ctx context.Context, circuitID int64) (int, error)
	ExistsByCircuitAndPlace(ctx context.Context, circuitID, placeID int64) (bool, error)

	// InsertWithShift applies the position shifts and inserts the new stop in
	// one transaction.
	InsertWithShift(ctx context.Context, stop *domain.CircuitStop, shifts []domain.PositionChange) (*domain.CircuitStop, error)
	// UpdateWithShift saves the stop's fields and applies reposition shifts in
	// one transaction. An empty shift batch is a plain update.
	UpdateWithShift(ctx context.Context, stop *domain.CircuitStop, shifts []domain.PositionChange) error
	// DeleteWithShift removes the stop and compacts the remaining positions in
	// one transaction.
	DeleteWithShift(ctx context.Context, stopID int64, shifts []domain.PositionChange) error
	// ApplyPositions rewrites positions for an entire circuit in one
	// transaction (AI reorder).
	ApplyPositions(ctx context.Context, circuitID int64, changes []domain.PositionChange) error
	// CreateBatchWithPlaces inserts new catalog places and their stops in one
	// transaction, backfilling each stop's place id from its paired place.
	// Slices must be the same length.
	CreateBatchWithPlaces(ctx context.Context, places []*domain.Place, stops []*domain.CircuitStop) error
}
