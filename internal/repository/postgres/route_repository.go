package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db,
		logger: db.logger,
	}
}

const routeColumns = `
	id, circuit_id, from_stop_id, to_stop_id, transport_option_id,
	transport_mode, distance_km, duration_minutes
`

func (r *routeRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitRoute, error) {
	query := `SELECT ` + routeColumns + ` FROM circuit_routes WHERE circuit_id = $1 ORDER BY id`

	var routes []*domain.CircuitRoute
	if err := r.db.SelectContext(ctx, &routes, query, circuitID); err != nil {
		r.logger.Error("Failed to list routes", zap.Int64("circuit_id", circuitID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return routes, nil
}

func (r *routeRepository) FindByStops(ctx context.Context, circuitID, fromStopID, toStopID int64) (*domain.CircuitRoute, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM circuit_routes
		WHERE circuit_id = $1 AND from_stop_id = $2 AND to_stop_id = $3
	`

	var route domain.CircuitRoute
	err := r.db.GetContext(ctx, &route, query, circuitID, fromStopID, toStopID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find route",
			zap.Int64("circuit_id", circuitID),
			zap.Int64("from_stop_id", fromStopID),
			zap.Int64("to_stop_id", toStopID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &route, nil
}

func (r *routeRepository) Save(ctx context.Context, route *domain.CircuitRoute) (*domain.CircuitRoute, error) {
	if route.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO circuit_routes
				(circuit_id, from_stop_id, to_stop_id, transport_option_id,
				 transport_mode, distance_km, duration_minutes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, route.CircuitID, route.FromStopID, route.ToStopID, route.TransportOptionID,
			route.TransportMode, route.DistanceKm, route.DurationMinutes,
		).Scan(&route.ID)
		if err != nil {
			r.logger.Error("Failed to insert route", zap.Int64("circuit_id", route.CircuitID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		return route, nil
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE circuit_routes
		SET transport_option_id = $2, transport_mode = $3, distance_km = $4, duration_minutes = $5
		WHERE id = $1
	`, route.ID, route.TransportOptionID, route.TransportMode, route.DistanceKm, route.DurationMinutes)
	if err != nil {
		r.logger.Error("Failed to update route", zap.Int64("id", route.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}
