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

type cityRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city,
		`SELECT id, created_at FROM cities WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	var names []domain.CityName
	err = r.db.SelectContext(ctx, &names, `
		SELECT id, city_id, name, is_primary
		FROM city_names
		WHERE city_id = $1
		ORDER BY is_primary DESC, id
	`, id)
	if err != nil {
		r.logger.Error("Failed to get city names", zap.Int64("city_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	city.Names = names
	return &city, nil
}
