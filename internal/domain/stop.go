package domain

import (
	"strings"

	"github.com/tour-planning-service/internal/pkg/errors"
)

type StopKind string

const (
	StopKindVisit     StopKind = "VISIT"
	StopKindEat       StopKind = "EAT"
	StopKindSleep     StopKind = "SLEEP"
	StopKindTransport StopKind = "TRANSPORT"
)

type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
)

// CircuitStop is one place visited within a circuit. Position is the 1-based
// dense rank of the stop in its circuit's visiting order.
type CircuitStop struct {
	ID              int64      `json:"id" db:"id"`
	CircuitID       int64      `json:"circuit_id" db:"circuit_id"`
	PlaceID         int64      `json:"place_id" db:"place_id"`
	Position        int        `json:"position" db:"position"`
	DayNumber       *int       `json:"day_number,omitempty" db:"day_number"`
	StopKind        *StopKind  `json:"stop_kind,omitempty" db:"stop_kind"`
	MealType        *MealType  `json:"meal_type,omitempty" db:"meal_type"`
	StartTime       *TimeOfDay `json:"start_time,omitempty" db:"start_time"`
	EndTime         *TimeOfDay `json:"end_time,omitempty" db:"end_time"`
	DurationMinutes *int       `json:"duration_minutes,omitempty" db:"duration_minutes"`
	Notes           *string    `json:"notes,omitempty" db:"notes"`
}

// NormalizeStopKind maps raw client or model input onto a StopKind.
// Nil passes through as "unset"; blank or unknown values are rejected.
func NormalizeStopKind(raw *string) (*StopKind, error) {
	if raw == nil {
		return nil, nil
	}

	v := strings.ToUpper(strings.TrimSpace(*raw))
	if v == "" {
		return nil, errors.ErrInvalidStopKind.WithMessage("stopKind cannot be blank")
	}

	kind := StopKind(v)
	switch kind {
	case StopKindVisit, StopKindEat, StopKindSleep, StopKindTransport:
		return &kind, nil
	}
	return nil, errors.ErrInvalidStopKind
}

// NormalizeMealType maps raw input onto a MealType, same shape as NormalizeStopKind.
func NormalizeMealType(raw *string) (*MealType, error) {
	if raw == nil {
		return nil, nil
	}

	v := strings.ToUpper(strings.TrimSpace(*raw))
	if v == "" {
		return nil, errors.ErrInvalidMealType.WithMessage("mealType cannot be blank")
	}

	meal := MealType(v)
	switch meal {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return &meal, nil
	}
	return nil, errors.ErrInvalidMealType
}
