package domain

import "time"

type City struct {
	ID        int64      `json:"id" db:"id"`
	Names     []CityName `json:"names" db:"-"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type CityName struct {
	ID      int64  `json:"id" db:"id"`
	CityID  int64  `json:"city_id" db:"city_id"`
	Name    string `json:"name" db:"name"`
	Primary bool   `json:"primary" db:"is_primary"`
}

// PrimaryName returns the city's primary display name, falling back to the
// first known name when none is flagged primary.
func (c *City) PrimaryName() string {
	for _, n := range c.Names {
		if n.Primary {
			return n.Name
		}
	}
	if len(c.Names) > 0 {
		return c.Names[0].Name
	}
	return ""
}

type Place struct {
	ID          int64    `json:"id" db:"id"`
	CityID      int64    `json:"city_id" db:"city_id"`
	Name        string   `json:"name" db:"name"`
	Category    *string  `json:"category,omitempty" db:"category"`
	Description *string  `json:"description,omitempty" db:"description"`
	Address     *string  `json:"address,omitempty" db:"address"`
	Image       *string  `json:"image,omitempty" db:"image"`
	Latitude    *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64 `json:"longitude,omitempty" db:"longitude"`
	CreatedBy   *int64   `json:"created_by,omitempty" db:"created_by"`
}
