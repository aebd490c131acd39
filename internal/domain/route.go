package domain

// CircuitRoute is a directed link between two stops of the same circuit.
// At most one route exists per (circuit, from, to) triple; writes are upserts.
type CircuitRoute struct {
	ID                int64    `json:"id" db:"id"`
	CircuitID         int64    `json:"circuit_id" db:"circuit_id"`
	FromStopID        int64    `json:"from_stop_id" db:"from_stop_id"`
	ToStopID          int64    `json:"to_stop_id" db:"to_stop_id"`
	TransportOptionID *int64   `json:"transport_option_id,omitempty" db:"transport_option_id"`
	TransportMode     *string  `json:"transport_mode,omitempty" db:"transport_mode"`
	DistanceKm        *float64 `json:"distance_km,omitempty" db:"distance_km"`
	DurationMinutes   *int     `json:"duration_minutes,omitempty" db:"duration_minutes"`
}
