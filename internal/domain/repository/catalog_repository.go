package repository

import (
	"context"

	"github.com/tour-planning-service/internal/domain"
)

type CityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.City, error)
}

type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	ListByCity(ctx context.Context, cityID int64) ([]*domain.Place, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Place, error)
}

type TransportOptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TransportOption, error)
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
