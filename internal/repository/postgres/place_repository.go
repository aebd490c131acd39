package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db,
		logger: db.logger,
	}
}

const placeColumns = `
	id, city_id, name, category, description, address, image,
	latitude, longitude, created_by
`

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) ListByCity(ctx context.Context, cityID int64) ([]*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE city_id = $1 ORDER BY id`

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, cityID); err != nil {
		r.logger.Error("Failed to list places", zap.Int64("city_id", cityID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Place, error) {
	if len(ids) == 0 {
		return map[int64]*domain.Place{}, nil
	}

	query := `SELECT ` + placeColumns + ` FROM places WHERE id = ANY($1)`

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get places by IDs", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	byID := make(map[int64]*domain.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}
	return byID, nil
}

// insertPlaceTx inserts a place and backfills its generated ID. Used by the
// stop repository's CreateBatchWithPlaces.
func insertPlaceTx(ctx context.Context, tx *sqlx.Tx, place *domain.Place) error {
	return tx.QueryRowContext(ctx, `
		INSERT INTO places
			(city_id, name, category, description, address, image, latitude, longitude, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, place.CityID, place.Name, place.Category, place.Description, place.Address,
		place.Image, place.Latitude, place.Longitude, place.CreatedBy,
	).Scan(&place.ID)
}
