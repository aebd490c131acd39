package dto

import "github.com/tour-planning-service/internal/domain"

type UpsertRouteRequest struct {
	FromStopID        int64    `json:"from_stop_id" validate:"required"`
	ToStopID          int64    `json:"to_stop_id" validate:"required"`
	TransportOptionID *int64   `json:"transport_option_id"`
	TransportMode     *string  `json:"transport_mode"`
	DistanceKm        *float64 `json:"distance_km" validate:"omitempty,gte=0"`
	DurationMinutes   *int     `json:"duration_minutes" validate:"omitempty,gt=0"`
}

type RouteResponse struct {
	ID                int64    `json:"id"`
	FromStopID        int64    `json:"from_stop_id"`
	ToStopID          int64    `json:"to_stop_id"`
	TransportOptionID *int64   `json:"transport_option_id,omitempty"`
	TransportMode     *string  `json:"transport_mode,omitempty"`
	DistanceKm        *float64 `json:"distance_km,omitempty"`
	DurationMinutes   *int     `json:"duration_minutes,omitempty"`
}

func ConvertRoute(r *domain.CircuitRoute) RouteResponse {
	return RouteResponse{
		ID:                r.ID,
		FromStopID:        r.FromStopID,
		ToStopID:          r.ToStopID,
		TransportOptionID: r.TransportOptionID,
		TransportMode:     r.TransportMode,
		DistanceKm:        r.DistanceKm,
		DurationMinutes:   r.DurationMinutes,
	}
}
