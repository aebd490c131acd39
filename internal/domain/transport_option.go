package domain

// TransportOption is a catalog entry linking two places with a transport mode.
// It is read-only from the circuit engine's point of view.
type TransportOption struct {
	ID              int64    `json:"id" db:"id"`
	FromPlaceID     int64    `json:"from_place_id" db:"from_place_id"`
	ToPlaceID       int64    `json:"to_place_id" db:"to_place_id"`
	Mode            string   `json:"mode" db:"mode"`
	Bidirectional   bool     `json:"bidirectional" db:"bidirectional"`
	DistanceKm      *float64 `json:"distance_km,omitempty" db:"distance_km"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" db:"duration_minutes"`
	FixedPrice      *float64 `json:"fixed_price,omitempty" db:"fixed_price"`
	PricePerKm      *float64 `json:"price_per_km,omitempty" db:"price_per_km"`
}

// MatchesPlaces reports whether the option covers a route between the given
// places: either the exact ordered pair, or the reversed pair when the option
// is bidirectional.
func (o *TransportOption) MatchesPlaces(fromPlaceID, toPlaceID int64) bool {
	if o.FromPlaceID == fromPlaceID && o.ToPlaceID == toPlaceID {
		return true
	}
	return o.Bidirectional && o.FromPlaceID == toPlaceID && o.ToPlaceID == fromPlaceID
}
