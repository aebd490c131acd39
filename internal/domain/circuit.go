package domain

import (
	"strings"
	"time"

	"github.com/tour-planning-service/internal/pkg/errors"
)

// Circuit is a guide-authored itinerary for a city: an ordered set of stops
// plus point-to-point routes between them.
type Circuit struct {
	ID        int64     `json:"id" db:"id"`
	CityID    int64     `json:"city_id" db:"city_id"`
	Name      string    `json:"name" db:"name"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	PriceMad  *float64  `json:"price_mad,omitempty" db:"price_mad"`
	CreatedBy int64     `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SessionStatus string

const (
	SessionStatusScheduled  SessionStatus = "SCHEDULED"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
	SessionStatusCancelled  SessionStatus = "CANCELLED"
)

// CircuitSession is a scheduled run of a circuit with real participants.
type CircuitSession struct {
	ID              int64         `json:"id" db:"id"`
	CircuitID       int64         `json:"circuit_id" db:"circuit_id"`
	StartDateTime   time.Time     `json:"start_date_time" db:"start_date_time"`
	EndDateTime     *time.Time    `json:"end_date_time,omitempty" db:"end_date_time"`
	MaxParticipants *int          `json:"max_participants,omitempty" db:"max_participants"`
	Notes           *string       `json:"notes,omitempty" db:"notes"`
	Status          SessionStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

func NormalizeSessionStatus(raw string) (SessionStatus, error) {
	status := SessionStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch status {
	case SessionStatusScheduled, SessionStatusInProgress, SessionStatusCompleted, SessionStatusCancelled:
		return status, nil
	}
	return "", errors.ErrInvalidRequest.WithMessage(
		"Invalid status. Must be one of: SCHEDULED, CANCELLED, COMPLETED, IN_PROGRESS")
}
