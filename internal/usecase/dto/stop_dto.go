package dto

import (
	"github.com/tour-planning-service/internal/domain"
)

type AddStopRequest struct {
	PlaceID         int64   `json:"place_id" validate:"required"`
	Position        *int    `json:"position"`
	DayNumber       *int    `json:"day_number"`
	StopKind        *string `json:"stop_kind"`
	MealType        *string `json:"meal_type"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Notes           *string `json:"notes"`
}

type UpdateStopRequest struct {
	Position        *int    `json:"position"`
	DayNumber       *int    `json:"day_number"`
	StopKind        *string `json:"stop_kind"`
	MealType        *string `json:"meal_type"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Notes           *string `json:"notes"`
}

// StopResponse carries the stop itself plus denormalized place fields so the
// client can render a stop list without extra lookups.
type StopResponse struct {
	ID              int64             `json:"id"`
	Position        int               `json:"position"`
	DayNumber       *int              `json:"day_number,omitempty"`
	StopKind        *domain.StopKind  `json:"stop_kind,omitempty"`
	MealType        *domain.MealType  `json:"meal_type,omitempty"`
	StartTime       *domain.TimeOfDay `json:"start_time,omitempty"`
	EndTime         *domain.TimeOfDay `json:"end_time,omitempty"`
	DurationMinutes *int              `json:"duration_minutes,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	PlaceID         int64             `json:"place_id"`
	PlaceName       string            `json:"place_name"`
	PlaceCategory   *string           `json:"place_category,omitempty"`
	PlaceImage      *string           `json:"place_image,omitempty"`
	PlaceAddress    *string           `json:"place_address,omitempty"`
	PlaceLatitude   *float64          `json:"place_latitude,omitempty"`
	PlaceLongitude  *float64          `json:"place_longitude,omitempty"`
}

func ConvertStop(s *domain.CircuitStop, place *domain.Place) StopResponse {
	resp := StopResponse{
		ID:              s.ID,
		Position:        s.Position,
		DayNumber:       s.DayNumber,
		StopKind:        s.StopKind,
		MealType:        s.MealType,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Notes:           s.Notes,
		PlaceID:         s.PlaceID,
	}

	if place != nil {
		resp.PlaceName = place.Name
		resp.PlaceCategory = place.Category
		resp.PlaceImage = place.Image
		resp.PlaceAddress = place.Address
		resp.PlaceLatitude = place.Latitude
		resp.PlaceLongitude = place.Longitude
	}

	return resp
}
