package dto

import (
	"time"

	"github.com/tour-planning-service/internal/domain"
)

type CreateCircuitRequest struct {
	CityID   int64    `json:"city_id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Notes    *string  `json:"notes"`
	PriceMad *float64 `json:"price_mad" validate:"omitempty,gte=0"`
}

type UpdateCircuitRequest struct {
	Name     *string  `json:"name"`
	Notes    *string  `json:"notes"`
	PriceMad *float64 `json:"price_mad" validate:"omitempty,gte=0"`
}

type CircuitSummaryResponse struct {
	ID        int64     `json:"id"`
	CityID    int64     `json:"city_id"`
	CityName  string    `json:"city_name"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes,omitempty"`
	PriceMad  *float64  `json:"price_mad,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	StopCount int       `json:"stop_count"`
}

type CircuitResponse struct {
	ID        int64           `json:"id"`
	CityID    int64           `json:"city_id"`
	CityName  string          `json:"city_name"`
	Name      string          `json:"name"`
	Notes     *string         `json:"notes,omitempty"`
	PriceMad  *float64        `json:"price_mad,omitempty"`
	CreatedBy int64           `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	Stops     []StopResponse  `json:"stops"`
	Routes    []RouteResponse `json:"routes"`
}

func ConvertCircuitSummary(c *domain.Circuit, cityName string, stopCount int) CircuitSummaryResponse {
	return CircuitSummaryResponse{
		ID:        c.ID,
		CityID:    c.CityID,
		CityName:  cityName,
		Name:      c.Name,
		Notes:     c.Notes,
		PriceMad:  c.PriceMad,
		CreatedAt: c.CreatedAt,
		StopCount: stopCount,
	}
}

func ConvertCircuit(c *domain.Circuit, cityName string, stops []StopResponse, routes []RouteResponse) *CircuitResponse {
	return &CircuitResponse{
		ID:        c.ID,
		CityID:    c.CityID,
		CityName:  cityName,
		Name:      c.Name,
		Notes:     c.Notes,
		PriceMad:  c.PriceMad,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		Stops:     stops,
		Routes:    routes,
	}
}
