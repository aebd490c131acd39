package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/pkg/utils"
	"github.com/tour-planning-service/internal/usecase/dto"
)

const defaultSuggestionCount = 5

// AiUseCase turns untrusted completion-service output into circuit mutations.
// Model text never reaches storage directly: a JSON span is extracted and
// decoded, every referenced id is checked against the database, and writes
// happen in a single transaction so a rejected response leaves no trace.
type AiUseCase struct {
	access     circuitAccess
	stops      repository.StopRepository
	cities     repository.CityRepository
	places     repository.PlaceRepository
	completion repository.CompletionClient
	weather    repository.WeatherProvider
	locker     *CircuitLocker
	logger     *zap.Logger
}

func NewAiUseCase(
	users repository.UserRepository,
	circuits repository.CircuitRepository,
	stops repository.StopRepository,
	cities repository.CityRepository,
	places repository.PlaceRepository,
	completion repository.CompletionClient,
	weather repository.WeatherProvider,
	locker *CircuitLocker,
	logger *zap.Logger,
) *AiUseCase {
	return &AiUseCase{
		access:     circuitAccess{users: users, circuits: circuits},
		stops:      stops,
		cities:     cities,
		places:     places,
		completion: completion,
		weather:    weather,
		locker:     locker,
		logger:     logger,
	}
}

// Reorder asks the model for a better visiting order and applies it as a
// full position rewrite. The proposed order must be an exact permutation of
// the circuit's stop ids; anything else rejects the whole response.
func (uc *AiUseCase) Reorder(ctx context.Context, email string, circuitID int64) (*dto.ReorderResponse, error) {
	if !uc.completion.IsConfigured() {
		return nil, errors.ErrAiNotConfigured
	}

	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	stops, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}
	if len(stops) < 2 {
		return nil, errors.ErrInvalidRequest.WithMessage("At least two stops are required to reorder a circuit")
	}

	placeIDs := make([]int64, 0, len(stops))
	for _, s := range stops {
		placeIDs = append(placeIDs, s.PlaceID)
	}
	placesByID, err := uc.places.GetByIDs(ctx, placeIDs)
	if err != nil {
		return nil, err
	}

	userPrompt, err := buildReorderPrompt(stops, placesByID)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completion.ChatCompletion(ctx, reorderSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	span, ok := utils.ExtractJSONObject(raw)
	if !ok {
		uc.logger.Warn("ai reorder response contained no JSON object",
			zap.Int64("circuit_id", circuitID))
		return nil, errors.ErrAiServiceError.WithMessage("AI response did not contain valid JSON")
	}

	var proposal struct {
		OrderedIDs []int64 `json:"ordered_ids"`
	}
	if err := json.Unmarshal([]byte(span), &proposal); err != nil {
		return nil, errors.ErrAiServiceError.WithMessage("AI response did not contain valid JSON")
	}

	unlock := uc.locker.Lock(circuitID)
	defer unlock()

	// The stop set may have changed while the model was thinking; validate
	// the proposal against a fresh read.
	current, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}
	if err := validateProposedOrder(current, proposal.OrderedIDs); err != nil {
		return nil, err
	}

	changes := make([]domain.PositionChange, 0, len(proposal.OrderedIDs))
	for i, id := range proposal.OrderedIDs {
		changes = append(changes, domain.PositionChange{StopID: id, Position: i + 1})
	}

	if err := uc.stops.ApplyPositions(ctx, circuitID, changes); err != nil {
		return nil, err
	}

	uc.logger.Info("circuit reordered by ai",
		zap.Int64("circuit_id", circuitID),
		zap.Int("stops", len(changes)))

	return &dto.ReorderResponse{CircuitID: circuitID, OrderedIDs: proposal.OrderedIDs}, nil
}

// validateProposedOrder accepts only an exact permutation of the current
// stop ids: same length, no duplicates, no foreign ids, nothing missing.
// A mismatched set is the caller's circuit disagreeing with the proposal,
// a bad request rather than a transport failure.
func validateProposedOrder(stops []*domain.CircuitStop, orderedIDs []int64) error {
	if len(orderedIDs) != len(stops) {
		return errors.ErrInvalidRequest.WithMessage("AI returned a stop order of the wrong length")
	}

	known := make(map[int64]bool, len(stops))
	for _, s := range stops {
		known[s.ID] = true
	}

	seen := make(map[int64]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] {
			return errors.ErrInvalidRequest.WithMessage("AI returned an unknown stop id")
		}
		if seen[id] {
			return errors.ErrInvalidRequest.WithMessage("AI returned a duplicate stop id")
		}
		seen[id] = true
	}

	return nil
}

// Generate builds a brand-new circuit for a city from the model's proposal.
// Stops referencing unknown places are dropped; the circuit and its surviving
// stops are persisted together, so a rejected proposal writes nothing.
func (uc *AiUseCase) Generate(ctx context.Context, email string, req dto.GenerateCircuitRequest) (*dto.CircuitResponse, error) {
	if !uc.completion.IsConfigured() {
		return nil, errors.ErrAiNotConfigured
	}

	user, err := uc.access.currentUser(ctx, email)
	if err != nil {
		return nil, err
	}

	city, err := uc.cities.GetByID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	cityPlaces, err := uc.places.ListByCity(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	if len(cityPlaces) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("No places are available for this city")
	}

	weatherSummary := ""
	if req.TravelDate != nil {
		weatherSummary = uc.weather.GetWeatherSummary(ctx, city.PrimaryName(), *req.TravelDate)
	}

	userPrompt, err := buildGeneratePrompt(city.PrimaryName(), cityPlaces, req, weatherSummary)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completion.ChatCompletion(ctx, generateSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	span, ok := utils.ExtractJSONObject(raw)
	if !ok {
		uc.logger.Warn("ai generate response contained no JSON object",
			zap.Int64("city_id", req.CityID))
		return nil, errors.ErrAiServiceError.WithMessage("AI response did not contain valid JSON")
	}

	var proposal struct {
		CircuitName string `json:"circuit_name"`
		Stops       []struct {
			PlaceID         int64   `json:"place_id"`
			DayNumber       int     `json:"day_number"`
			StopKind        *string `json:"stop_kind"`
			MealType        *string `json:"meal_type"`
			StartTime       *string `json:"start_time"`
			DurationMinutes int     `json:"duration_minutes"`
			Notes           *string `json:"notes"`
		} `json:"stops"`
	}
	if err := json.Unmarshal([]byte(span), &proposal); err != nil {
		return nil, errors.ErrAiServiceError.WithMessage("AI response did not contain valid JSON")
	}

	knownPlaces := make(map[int64]*domain.Place, len(cityPlaces))
	for _, p := range cityPlaces {
		knownPlaces[p.ID] = p
	}

	var stops []*domain.CircuitStop
	usedPlaces := make(map[int64]bool)
	for _, gs := range proposal.Stops {
		// Unknown or repeated places are dropped, not fatal; only an empty
		// result rejects the proposal.
		if knownPlaces[gs.PlaceID] == nil || usedPlaces[gs.PlaceID] {
			continue
		}
		usedPlaces[gs.PlaceID] = true

		stop := &domain.CircuitStop{
			PlaceID:  gs.PlaceID,
			Position: len(stops) + 1,
			Notes:    gs.Notes,
		}
		if gs.DayNumber > 0 {
			day := gs.DayNumber
			stop.DayNumber = &day
		}

		if kind, err := domain.NormalizeStopKind(gs.StopKind); err == nil {
			stop.StopKind = kind
		}
		if meal, err := domain.NormalizeMealType(gs.MealType); err == nil {
			stop.MealType = meal
		}
		if stop.MealType != nil && (stop.StopKind == nil || *stop.StopKind != domain.StopKindEat) {
			eat := domain.StopKindEat
			stop.StopKind = &eat
		}

		// A malformed time or a missing day means no time window at all.
		if gs.StartTime != nil && stop.DayNumber != nil {
			if start, err := domain.ParseTimeOfDay(*gs.StartTime); err == nil {
				stop.StartTime = &start
				if gs.DurationMinutes > 0 {
					end := start.AddMinutes(gs.DurationMinutes)
					if start.Before(end) {
						stop.EndTime = &end
						duration := gs.DurationMinutes
						stop.DurationMinutes = &duration
					} else {
						stop.StartTime = nil
					}
				} else {
					stop.StartTime = nil
				}
			}
		}

		stops = append(stops, stop)
	}

	if len(stops) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("AI failed to generate any valid stops")
	}

	name := strings.TrimSpace(proposal.CircuitName)
	if name == "" {
		name = fmt.Sprintf("%s Circuit", city.PrimaryName())
	}

	circuit := &domain.Circuit{
		CityID:    req.CityID,
		Name:      name,
		CreatedBy: user.ID,
	}

	created, err := uc.access.circuits.CreateWithStops(ctx, circuit, stops)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("circuit generated by ai",
		zap.Int64("circuit_id", created.ID),
		zap.Int64("city_id", req.CityID),
		zap.Int("stops", len(stops)))

	stopResponses := make([]dto.StopResponse, 0, len(stops))
	for _, s := range stops {
		stopResponses = append(stopResponses, dto.ConvertStop(s, knownPlaces[s.PlaceID]))
	}

	return dto.ConvertCircuit(created, city.PrimaryName(), stopResponses, []dto.RouteResponse{}), nil
}

// SuggestPlaces asks the model for places not yet in the circuit, stores them
// in the catalog and appends them as VISIT stops.
func (uc *AiUseCase) SuggestPlaces(ctx context.Context, email string, circuitID int64, req dto.SuggestPlacesRequest) ([]dto.StopResponse, error) {
	if !uc.completion.IsConfigured() {
		return nil, errors.ErrAiNotConfigured
	}

	user, circuit, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	city, err := uc.cities.GetByID(ctx, circuit.CityID)
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
	existing, err := uc.places.GetByIDs(ctx, placeIDs)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count <= 0 {
		count = defaultSuggestionCount
	}

	userPrompt, err := buildSuggestPrompt(city.PrimaryName(), existing, count, req.Preferences)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completion.ChatCompletion(ctx, suggestSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	span, ok := utils.ExtractJSONArray(raw)
	if !ok {
		uc.logger.Warn("ai suggest response contained no JSON array",
			zap.Int64("circuit_id", circuitID))
		return nil, errors.ErrAiServiceError.WithMessage("AI response did not contain valid JSON")
	}

	var suggestions []struct {
		Name        string   `json:"name"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Address     *string  `json:"address"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}
	if err := json.Unmarshal([]byte(span), &suggestions); err != nil {
		return nil, errors.ErrAiServiceError.WithMessage("AI response did not contain valid JSON")
	}

	var candidates []*domain.Place
	for _, s := range suggestions {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}

		candidates = append(candidates, &domain.Place{
			CityID:      circuit.CityID,
			Name:        name,
			Category:    s.Category,
			Description: s.Description,
			Address:     s.Address,
			Latitude:    s.Latitude,
			Longitude:   s.Longitude,
			CreatedBy:   &user.ID,
		})
		if len(candidates) == count {
			break
		}
	}

	if len(candidates) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("AI failed to suggest any valid places")
	}

	unlock := uc.locker.Lock(circuitID)
	defer unlock()

	maxPosition, err := uc.stops.MaxPosition(ctx, circuitID)
	if err != nil {
		return nil, err
	}

	visit := domain.StopKindVisit
	newStops := make([]*domain.CircuitStop, 0, len(candidates))
	for i := range candidates {
		newStops = append(newStops, &domain.CircuitStop{
			CircuitID: circuitID,
			Position:  maxPosition + i + 1,
			StopKind:  &visit,
		})
	}

	// Places and stops land together or not at all.
	if err := uc.stops.CreateBatchWithPlaces(ctx, candidates, newStops); err != nil {
		return nil, err
	}

	uc.logger.Info("ai suggested places appended",
		zap.Int64("circuit_id", circuitID),
		zap.Int("places", len(candidates)))

	responses := make([]dto.StopResponse, 0, len(newStops))
	for i, s := range newStops {
		responses = append(responses, dto.ConvertStop(s, candidates[i]))
	}
	return responses, nil
}
