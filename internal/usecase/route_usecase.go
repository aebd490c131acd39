package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/usecase/dto"
)

// RouteUseCase manages the directed routes between a circuit's stops.
type RouteUseCase struct {
	access  circuitAccess
	stops   repository.StopRepository
	routes  repository.RouteRepository
	options repository.TransportOptionRepository
	logger  *zap.Logger
}

func NewRouteUseCase(
	users repository.UserRepository,
	circuits repository.CircuitRepository,
	stops repository.StopRepository,
	routes repository.RouteRepository,
	options repository.TransportOptionRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		access:  circuitAccess{users: users, circuits: circuits},
		stops:   stops,
		routes:  routes,
		options: options,
		logger:  logger,
	}
}

// Upsert creates or updates the route for an ordered stop pair. When a
// transport option is referenced it must cover the pair's places; its mode,
// distance and duration fill any fields the request leaves unset.
func (uc *RouteUseCase) Upsert(ctx context.Context, email string, circuitID int64, req dto.UpsertRouteRequest) (*dto.RouteResponse, error) {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	if req.FromStopID == req.ToStopID {
		return nil, errors.ErrInvalidRequest.WithMessage("A route must connect two different stops")
	}

	fromStop, err := uc.stops.GetByID(ctx, req.FromStopID)
	if err != nil {
		return nil, err
	}
	toStop, err := uc.stops.GetByID(ctx, req.ToStopID)
	if err != nil {
		return nil, err
	}
	if fromStop.CircuitID != circuitID || toStop.CircuitID != circuitID {
		return nil, errors.ErrStopNotFound
	}

	var option *domain.TransportOption
	if req.TransportOptionID != nil {
		option, err = uc.options.GetByID(ctx, *req.TransportOptionID)
		if err != nil {
			return nil, err
		}
		if !option.MatchesPlaces(fromStop.PlaceID, toStop.PlaceID) {
			return nil, errors.ErrInvalidRequest.WithMessage("Transport option does not match this route's places")
		}
	}

	route, err := uc.routes.FindByStops(ctx, circuitID, req.FromStopID, req.ToStopID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		route = &domain.CircuitRoute{
			CircuitID:  circuitID,
			FromStopID: req.FromStopID,
			ToStopID:   req.ToStopID,
		}
	}

	if req.TransportOptionID != nil {
		route.TransportOptionID = req.TransportOptionID
	}
	if req.TransportMode != nil {
		route.TransportMode = req.TransportMode
	}
	if req.DistanceKm != nil {
		route.DistanceKm = req.DistanceKm
	}
	if req.DurationMinutes != nil {
		route.DurationMinutes = req.DurationMinutes
	}

	// Explicit request fields win; the option only fills the gaps.
	if option != nil {
		if route.TransportMode == nil {
			mode := option.Mode
			route.TransportMode = &mode
		}
		if route.DistanceKm == nil {
			route.DistanceKm = option.DistanceKm
		}
		if route.DurationMinutes == nil {
			route.DurationMinutes = option.DurationMinutes
		}
	}

	saved, err := uc.routes.Save(ctx, route)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("route saved",
		zap.Int64("circuit_id", circuitID),
		zap.Int64("route_id", saved.ID),
		zap.Int64("from_stop_id", saved.FromStopID),
		zap.Int64("to_stop_id", saved.ToStopID))

	resp := dto.ConvertRoute(saved)
	return &resp, nil
}
