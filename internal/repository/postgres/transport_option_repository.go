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

type transportOptionRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTransportOptionRepository(db *DB) repository.TransportOptionRepository {
	return &transportOptionRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *transportOptionRepository) GetByID(ctx context.Context, id int64) (*domain.TransportOption, error) {
	query := `
		SELECT id, from_place_id, to_place_id, mode, bidirectional,
		       distance_km, duration_minutes, fixed_price, price_per_km
		FROM transport_options
		WHERE id = $1
	`

	var option domain.TransportOption
	err := r.db.GetContext(ctx, &option, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTransportOptionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get transport option", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &option, nil
}
