package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/usecase/dto"
)

const reorderSystemPrompt = `You are a tour-planning assistant. You optimize the visiting order of an ` +
	`itinerary's stops to minimize travel and keep meals and overnight stays at sensible times. ` +
	`Respond with a single JSON object of the form {"ordered_ids": [..]} containing every stop id ` +
	`exactly once, in the proposed visiting order. Do not add any other text.`

const generateSystemPrompt = `You are a tour-planning assistant. You design multi-day itineraries ` +
	`using only the places provided. Respond with a single JSON object of the form ` +
	`{"circuit_name": "...", "stops": [{"place_id": 1, "day_number": 1, "stop_kind": "VISIT", ` +
	`"meal_type": null, "start_time": "09:00", "duration_minutes": 90, "notes": null}, ..]}. ` +
	`Use stop_kind VISIT, EAT, SLEEP or TRANSPORT and meal_type BREAKFAST, LUNCH or DINNER. ` +
	`Only reference place_id values from the provided list. Do not add any other text.`

const suggestSystemPrompt = `You are a local guide. You recommend real, well-known places in a city ` +
	`that are not already part of an itinerary. Respond with a single JSON array of objects of the ` +
	`form [{"name": "...", "category": "...", "description": "...", "address": "...", ` +
	`"latitude": 0.0, "longitude": 0.0}, ..]. Do not add any other text.`

func buildReorderPrompt(stops []*domain.CircuitStop, placesByID map[int64]*domain.Place) (string, error) {
	type promptStop struct {
		ID        int64             `json:"id"`
		Position  int               `json:"position"`
		PlaceName string            `json:"place_name"`
		DayNumber *int              `json:"day_number,omitempty"`
		StopKind  *domain.StopKind  `json:"stop_kind,omitempty"`
		MealType  *domain.MealType  `json:"meal_type,omitempty"`
		StartTime *domain.TimeOfDay `json:"start_time,omitempty"`
		EndTime   *domain.TimeOfDay `json:"end_time,omitempty"`
		Latitude  *float64          `json:"latitude,omitempty"`
		Longitude *float64          `json:"longitude,omitempty"`
	}

	promptStops := make([]promptStop, 0, len(stops))
	for _, s := range stops {
		ps := promptStop{
			ID:        s.ID,
			Position:  s.Position,
			DayNumber: s.DayNumber,
			StopKind:  s.StopKind,
			MealType:  s.MealType,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
		if place := placesByID[s.PlaceID]; place != nil {
			ps.PlaceName = place.Name
			ps.Latitude = place.Latitude
			ps.Longitude = place.Longitude
		}
		promptStops = append(promptStops, ps)
	}

	encoded, err := json.Marshal(promptStops)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Propose the best visiting order for these stops:\n%s", encoded), nil
}

func buildGeneratePrompt(cityName string, places []*domain.Place, req dto.GenerateCircuitRequest, weatherSummary string) (string, error) {
	type promptPlace struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Category    *string `json:"category,omitempty"`
		Description *string `json:"description,omitempty"`
	}

	promptPlaces := make([]promptPlace, 0, len(places))
	for _, p := range places {
		promptPlaces = append(promptPlaces, promptPlace{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
		})
	}

	encoded, err := json.Marshal(promptPlaces)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Design a %d-day itinerary for %s.\n", req.NumberOfDays, cityName)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "The traveler is interested in: %s.\n", strings.Join(req.Interests, ", "))
	}
	if weatherSummary != "" {
		fmt.Fprintf(&b, "Weather: %s\n", weatherSummary)
	}
	fmt.Fprintf(&b, "Available places:\n%s", encoded)

	return b.String(), nil
}

func buildSuggestPrompt(cityName string, existing map[int64]*domain.Place, count int, preferences []string) (string, error) {
	names := make([]string, 0, len(existing))
	for _, p := range existing {
		names = append(names, p.Name)
	}

	encoded, err := json.Marshal(names)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d places to visit in %s.\n", count, cityName)
	if len(preferences) > 0 {
		fmt.Fprintf(&b, "Preferences: %s.\n", strings.Join(preferences, ", "))
	}
	fmt.Fprintf(&b, "Already in the itinerary (do not repeat these):\n%s", encoded)

	return b.String(), nil
}
