package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type stopRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStopRepository(db *DB) repository.StopRepository {
	return &stopRepository{
		db:     db,
		logger: db.logger,
	}
}

const stopColumns = `
	id, circuit_id, place_id, position, day_number, stop_kind, meal_type,
	start_time, end_time, duration_minutes, notes
`

func (r *stopRepository) GetByID(ctx context.Context, id int64) (*domain.CircuitStop, error) {
	query := `SELECT ` + stopColumns + ` FROM circuit_stops WHERE id = $1`

	var stop domain.CircuitStop
	err := r.db.GetContext(ctx, &stop, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get stop by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &stop, nil
}

func (r *stopRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitStop, error) {
	query := `
		SELECT ` + stopColumns + `
		FROM circuit_stops
		WHERE circuit_id = $1
		ORDER BY position ASC
	`

	var stops []*domain.CircuitStop
	if err := r.db.SelectContext(ctx, &stops, query, circuitID); err != nil {
		r.logger.Error("Failed to list stops", zap.Int64("circuit_id", circuitID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stops, nil
}

func (r *stopRepository) CountByCircuit(ctx context.Context, circuitID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM circuit_stops WHERE circuit_id = $1`, circuitID)
	if err != nil {
		r.logger.Error("Failed to count stops", zap.Int64("circuit_id", circuitID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *stopRepository) MaxPosition(ctx context.Context, circuitID int64) (int, error) {
	var maxPos int
	err := r.db.GetContext(ctx, &maxPos,
		`SELECT COALESCE(MAX(position), 0) FROM circuit_stops WHERE circuit_id = $1`, circuitID)
	if err != nil {
		r.logger.Error("Failed to get max position", zap.Int64("circuit_id", circuitID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return maxPos, nil
}

func (r *stopRepository) ExistsByCircuitAndPlace(ctx context.Context, circuitID, placeID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM circuit_stops WHERE circuit_id = $1 AND place_id = $2)`,
		circuitID, placeID)
	if err != nil {
		r.logger.Error("Failed to check stop existence", zap.Int64("circuit_id", circuitID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *stopRepository) InsertWithShift(
	ctx context.Context,
	stop *domain.CircuitStop,
	shifts []domain.PositionChange,
) (*domain.CircuitStop, error) {
	err := r.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if err := applyPositionsTx(ctx, tx, shifts); err != nil {
			return err
		}
		return insertStopTx(ctx, tx, stop)
	})
	if err != nil {
		r.logger.Error("Failed to insert stop",
			zap.Int64("circuit_id", stop.CircuitID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stop, nil
}

func (r *stopRepository) UpdateWithShift(
	ctx context.Context,
	stop *domain.CircuitStop,
	shifts []domain.PositionChange,
) error {
	err := r.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if err := applyPositionsTx(ctx, tx, shifts); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			UPDATE circuit_stops
			SET position = $2, day_number = $3, stop_kind = $4, meal_type = $5,
			    start_time = $6, end_time = $7, duration_minutes = $8, notes = $9
			WHERE id = $1
		`, stop.ID, stop.Position, stop.DayNumber, stop.StopKind, stop.MealType,
			stop.StartTime, stop.EndTime, stop.DurationMinutes, stop.Notes)
		return err
	})
	if err != nil {
		r.logger.Error("Failed to update stop", zap.Int64("id", stop.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *stopRepository) DeleteWithShift(
	ctx context.Context,
	stopID int64,
	shifts []domain.PositionChange,
) error {
	err := r.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM circuit_stops WHERE id = $1`, stopID); err != nil {
			return err
		}
		return applyPositionsTx(ctx, tx, shifts)
	})
	if err != nil {
		r.logger.Error("Failed to delete stop", zap.Int64("id", stopID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *stopRepository) ApplyPositions(
	ctx context.Context,
	circuitID int64,
	changes []domain.PositionChange,
) error {
	err := r.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		return applyPositionsTx(ctx, tx, changes)
	})
	if err != nil {
		r.logger.Error("Failed to apply positions",
			zap.Int64("circuit_id", circuitID), zap.Int("changes", len(changes)), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *stopRepository) CreateBatchWithPlaces(
	ctx context.Context,
	places []*domain.Place,
	stops []*domain.CircuitStop,
) error {
	err := r.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		for i, place := range places {
			if err := insertPlaceTx(ctx, tx, place); err != nil {
				return err
			}
			stops[i].PlaceID = place.ID
			if err := insertStopTx(ctx, tx, stops[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to create places with stops",
			zap.Int("places", len(places)), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// insertStopTx inserts a stop and backfills its generated ID. Shared with the
// circuit repository's CreateWithStops.
func insertStopTx(ctx context.Context, tx *sqlx.Tx, stop *domain.CircuitStop) error {
	return tx.QueryRowContext(ctx, `
		INSERT INTO circuit_stops
			(circuit_id, place_id, position, day_number, stop_kind, meal_type,
			 start_time, end_time, duration_minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, stop.CircuitID, stop.PlaceID, stop.Position, stop.DayNumber, stop.StopKind,
		stop.MealType, stop.StartTime, stop.EndTime, stop.DurationMinutes, stop.Notes,
	).Scan(&stop.ID)
}

// applyPositionsTx rewrites positions row by row. The unique
// (circuit_id, position) constraint is deferred, so intermediate states inside
// the transaction may collide without failing.
func applyPositionsTx(ctx context.Context, tx *sqlx.Tx, changes []domain.PositionChange) error {
	for _, change := range changes {
		if _, err := tx.ExecContext(ctx,
			`UPDATE circuit_stops SET position = $2 WHERE id = $1`,
			change.StopID, change.Position); err != nil {
			return err
		}
	}
	return nil
}
