package usecase

import (
	"fmt"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/pkg/errors"
)

// ValidateStopSchedule checks one stop's (day, kind, meal, start, end) tuple
// for internal consistency. It is side-effect free; callers persist only
// after it passes.
func ValidateStopSchedule(
	dayNumber *int,
	stopKind *domain.StopKind,
	mealType *domain.MealType,
	startTime, endTime *domain.TimeOfDay,
) error {
	if dayNumber != nil && *dayNumber <= 0 {
		return errors.ErrInvalidSchedule.WithMessage("Day number must be > 0")
	}

	if (startTime != nil || endTime != nil) && dayNumber == nil {
		return errors.ErrInvalidSchedule.WithMessage("dayNumber is required when specifying startTime/endTime")
	}

	if (startTime == nil) != (endTime == nil) {
		return errors.ErrInvalidSchedule.WithMessage("startTime and endTime must be provided together")
	}

	if mealType != nil && (stopKind == nil || *stopKind != domain.StopKindEat) {
		return errors.ErrInvalidSchedule.WithMessage("mealType requires stopKind EAT")
	}

	if startTime != nil && endTime != nil && !startTime.Before(*endTime) {
		return errors.ErrInvalidSchedule.WithMessage("startTime must be before endTime")
	}

	return nil
}

// ValidateNoOverlap rejects a [start, end) window that intersects any sibling
// stop on the same day. Two windows [s1,e1) and [s2,e2) overlap iff
// s1 < e2 && s2 < e1, so windows that merely touch are allowed. A window with
// any component absent never conflicts.
func ValidateNoOverlap(
	stops []*domain.CircuitStop,
	ignoreStopID *int64,
	dayNumber *int,
	startTime, endTime *domain.TimeOfDay,
) error {
	if dayNumber == nil || startTime == nil || endTime == nil {
		return nil
	}

	for _, s := range stops {
		if ignoreStopID != nil && s.ID == *ignoreStopID {
			continue
		}
		if s.DayNumber == nil || *s.DayNumber != *dayNumber {
			continue
		}
		if s.StartTime == nil || s.EndTime == nil {
			continue
		}

		if startTime.Before(*s.EndTime) && s.StartTime.Before(*endTime) {
			return errors.ErrScheduleOverlap.WithMessage(
				fmt.Sprintf("Time window overlaps with another stop on day %d", *dayNumber))
		}
	}

	return nil
}
