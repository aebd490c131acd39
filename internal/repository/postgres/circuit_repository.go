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

type circuitRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCircuitRepository(db *DB) repository.CircuitRepository {
	return &circuitRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *circuitRepository) GetByID(ctx context.Context, id int64) (*domain.Circuit, error) {
	query := `
		SELECT id, city_id, name, notes, price_mad, created_by, created_at
		FROM circuits
		WHERE id = $1
	`

	var circuit domain.Circuit
	err := r.db.GetContext(ctx, &circuit, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCircuitNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get circuit by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &circuit, nil
}

func (r *circuitRepository) ListByOwner(ctx context.Context, userID int64, cityID *int64) ([]*domain.Circuit, error) {
	query := `
		SELECT id, city_id, name, notes, price_mad, created_by, created_at
		FROM circuits
		WHERE created_by = $1
		  AND ($2::bigint IS NULL OR city_id = $2)
		ORDER BY created_at DESC
	`

	var circuits []*domain.Circuit
	if err := r.db.SelectContext(ctx, &circuits, query, userID, cityID); err != nil {
		r.logger.Error("Failed to list circuits", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return circuits, nil
}

func (r *circuitRepository) Create(ctx context.Context, circuit *domain.Circuit) (*domain.Circuit, error) {
	query := `
		INSERT INTO circuits (city_id, name, notes, price_mad, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		circuit.CityID, circuit.Name, circuit.Notes, circuit.PriceMad, circuit.CreatedBy,
	).Scan(&circuit.ID, &circuit.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create circuit", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return circuit, nil
}

func (r *circuitRepository) Update(ctx context.Context, circuit *domain.Circuit) error {
	query := `
		UPDATE circuits
		SET name = $2, notes = $3, price_mad = $4
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, circuit.ID, circuit.Name, circuit.Notes, circuit.PriceMad)
	if err != nil {
		r.logger.Error("Failed to update circuit", zap.Int64("id", circuit.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrCircuitNotFound
	}
	return nil
}

func (r *circuitRepository) Delete(ctx context.Context, id int64) error {
	// Stops, routes and sessions cascade at the schema level.
	res, err := r.db.ExecContext(ctx, `DELETE FROM circuits WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete circuit", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrCircuitNotFound
	}
	return nil
}

func (r *circuitRepository) CreateWithStops(
	ctx context.Context,
	circuit *domain.Circuit,
	stops []*domain.CircuitStop,
) (*domain.Circuit, error) {
	err := r.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO circuits (city_id, name, notes, price_mad, created_by)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, circuit.CityID, circuit.Name, circuit.Notes, circuit.PriceMad, circuit.CreatedBy)
		if err := row.Scan(&circuit.ID, &circuit.CreatedAt); err != nil {
			return err
		}

		for _, stop := range stops {
			stop.CircuitID = circuit.ID
			if err := insertStopTx(ctx, tx, stop); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to create circuit with stops",
			zap.Int("stops", len(stops)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return circuit, nil
}
