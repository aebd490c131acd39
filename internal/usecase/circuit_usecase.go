package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/usecase/dto"
)

// CircuitUseCase covers circuit CRUD plus the read-side assembly of a full
// circuit view (stops with place details, routes, planning warnings).
type CircuitUseCase struct {
	access circuitAccess
	stops  repository.StopRepository
	routes repository.RouteRepository
	cities repository.CityRepository
	places repository.PlaceRepository
	logger *zap.Logger
}

func NewCircuitUseCase(
	users repository.UserRepository,
	circuits repository.CircuitRepository,
	stops repository.StopRepository,
	routes repository.RouteRepository,
	cities repository.CityRepository,
	places repository.PlaceRepository,
	logger *zap.Logger,
) *CircuitUseCase {
	return &CircuitUseCase{
		access: circuitAccess{users: users, circuits: circuits},
		stops:  stops,
		routes: routes,
		cities: cities,
		places: places,
		logger: logger,
	}
}

// ListMine returns the caller's circuits, newest first, optionally filtered
// by city. Each summary carries the stop count for list rendering.
func (uc *CircuitUseCase) ListMine(ctx context.Context, email string, cityID *int64) ([]dto.CircuitSummaryResponse, error) {
	user, err := uc.access.currentUser(ctx, email)
	if err != nil {
		return nil, err
	}

	circuits, err := uc.access.circuits.ListByOwner(ctx, user.ID, cityID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CircuitSummaryResponse, 0, len(circuits))
	for _, c := range circuits {
		count, err := uc.stops.CountByCircuit(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		cityName := ""
		if city, err := uc.cities.GetByID(ctx, c.CityID); err == nil {
			cityName = city.PrimaryName()
		}

		summaries = append(summaries, dto.ConvertCircuitSummary(c, cityName, count))
	}

	return summaries, nil
}

// Get returns the full circuit view: stops in position order with place
// details, plus all routes.
func (uc *CircuitUseCase) Get(ctx context.Context, email string, circuitID int64) (*dto.CircuitResponse, error) {
	_, circuit, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	stops, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}

	placeIDs := make([]int64, 0, len(stops))
	for _, s := range stops {
		placeIDs = append(placeIDs, s.PlaceID)
	}
	placesByID, err := uc.places.GetByIDs(ctx, placeIDs)
	if err != nil {
		return nil, err
	}

	stopResponses := make([]dto.StopResponse, 0, len(stops))
	for _, s := range stops {
		stopResponses = append(stopResponses, dto.ConvertStop(s, placesByID[s.PlaceID]))
	}

	routes, err := uc.routes.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}
	routeResponses := make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		routeResponses = append(routeResponses, dto.ConvertRoute(r))
	}

	cityName := ""
	if city, err := uc.cities.GetByID(ctx, circuit.CityID); err == nil {
		cityName = city.PrimaryName()
	}

	return dto.ConvertCircuit(circuit, cityName, stopResponses, routeResponses), nil
}

func (uc *CircuitUseCase) Create(ctx context.Context, email string, req dto.CreateCircuitRequest) (*dto.CircuitResponse, error) {
	user, err := uc.access.currentUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Circuit name must not be blank")
	}

	city, err := uc.cities.GetByID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	circuit := &domain.Circuit{
		CityID:    req.CityID,
		Name:      strings.TrimSpace(req.Name),
		Notes:     req.Notes,
		PriceMad:  req.PriceMad,
		CreatedBy: user.ID,
	}

	created, err := uc.access.circuits.Create(ctx, circuit)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("circuit created",
		zap.Int64("circuit_id", created.ID),
		zap.Int64("user_id", user.ID))

	return dto.ConvertCircuit(created, city.PrimaryName(), []dto.StopResponse{}, []dto.RouteResponse{}), nil
}

func (uc *CircuitUseCase) Update(ctx context.Context, email string, circuitID int64, req dto.UpdateCircuitRequest) (*dto.CircuitResponse, error) {
	_, circuit, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.ErrInvalidRequest.WithMessage("Circuit name must not be blank")
		}
		circuit.Name = name
	}
	if req.Notes != nil {
		circuit.Notes = req.Notes
	}
	if req.PriceMad != nil {
		circuit.PriceMad = req.PriceMad
	}

	if err := uc.access.circuits.Update(ctx, circuit); err != nil {
		return nil, err
	}

	return uc.Get(ctx, email, circuitID)
}

func (uc *CircuitUseCase) Delete(ctx context.Context, email string, circuitID int64) error {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return err
	}

	if err := uc.access.circuits.Delete(ctx, circuitID); err != nil {
		return err
	}

	uc.logger.Info("circuit deleted", zap.Int64("circuit_id", circuitID))
	return nil
}

// Warnings runs the advisory planning analysis over the circuit's stops.
func (uc *CircuitUseCase) Warnings(ctx context.Context, email string, circuitID int64) ([]domain.PlanningWarning, error) {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	stops, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}

	return BuildPlanningWarnings(stops), nil
}
