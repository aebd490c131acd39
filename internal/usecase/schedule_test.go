package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/usecase"
)

func timePtr(t *testing.T, s string) *domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseTimeOfDay(s)
	assert.NoError(t, err)
	return &tod
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func scheduledStop(id int64, day int, start, end *domain.TimeOfDay) *domain.CircuitStop {
	return &domain.CircuitStop{
		ID:        id,
		DayNumber: &day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestValidateStopSchedule(t *testing.T) {
	eat := domain.StopKindEat
	visit := domain.StopKindVisit
	lunch := domain.MealTypeLunch

	t.Run("fully scheduled meal stop passes", func(t *testing.T) {
		err := usecase.ValidateStopSchedule(intPtr(1), &eat, &lunch, timePtr(t, "12:00"), timePtr(t, "13:00"))
		assert.NoError(t, err)
	})

	t.Run("empty schedule passes", func(t *testing.T) {
		assert.NoError(t, usecase.ValidateStopSchedule(nil, nil, nil, nil, nil))
	})

	t.Run("non-positive day is rejected", func(t *testing.T) {
		err := usecase.ValidateStopSchedule(intPtr(0), nil, nil, nil, nil)
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)
	})

	t.Run("times without a day are rejected", func(t *testing.T) {
		err := usecase.ValidateStopSchedule(nil, nil, nil, timePtr(t, "09:00"), timePtr(t, "10:00"))
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)
	})

	t.Run("one-sided time window is rejected", func(t *testing.T) {
		err := usecase.ValidateStopSchedule(intPtr(1), nil, nil, timePtr(t, "09:00"), nil)
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)

		err = usecase.ValidateStopSchedule(intPtr(1), nil, nil, nil, timePtr(t, "10:00"))
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)
	})

	t.Run("meal type requires an EAT stop", func(t *testing.T) {
		err := usecase.ValidateStopSchedule(intPtr(1), &visit, &lunch, nil, nil)
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)

		err = usecase.ValidateStopSchedule(intPtr(1), nil, &lunch, nil, nil)
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)
	})

	t.Run("start must precede end", func(t *testing.T) {
		err := usecase.ValidateStopSchedule(intPtr(1), nil, nil, timePtr(t, "10:00"), timePtr(t, "09:00"))
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)

		err = usecase.ValidateStopSchedule(intPtr(1), nil, nil, timePtr(t, "10:00"), timePtr(t, "10:00"))
		assert.ErrorIs(t, err, errors.ErrInvalidSchedule)
	})
}

func TestValidateNoOverlap(t *testing.T) {
	t.Run("intersecting windows on the same day are rejected", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(1, 1, timePtr(t, "09:00"), timePtr(t, "11:00")),
		}
		err := usecase.ValidateNoOverlap(siblings, nil, intPtr(1), timePtr(t, "10:00"), timePtr(t, "12:00"))
		assert.ErrorIs(t, err, errors.ErrScheduleOverlap)
	})

	t.Run("overlap detection is symmetric", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(1, 1, timePtr(t, "10:00"), timePtr(t, "12:00")),
		}
		err := usecase.ValidateNoOverlap(siblings, nil, intPtr(1), timePtr(t, "09:00"), timePtr(t, "11:00"))
		assert.ErrorIs(t, err, errors.ErrScheduleOverlap)
	})

	t.Run("touching windows are allowed", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(1, 1, timePtr(t, "09:00"), timePtr(t, "11:00")),
		}
		err := usecase.ValidateNoOverlap(siblings, nil, intPtr(1), timePtr(t, "11:00"), timePtr(t, "12:00"))
		assert.NoError(t, err)
	})

	t.Run("different days never conflict", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(1, 2, timePtr(t, "09:00"), timePtr(t, "11:00")),
		}
		err := usecase.ValidateNoOverlap(siblings, nil, intPtr(1), timePtr(t, "09:00"), timePtr(t, "11:00"))
		assert.NoError(t, err)
	})

	t.Run("the stop being updated is ignored", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(5, 1, timePtr(t, "09:00"), timePtr(t, "11:00")),
		}
		err := usecase.ValidateNoOverlap(siblings, int64Ptr(5), intPtr(1), timePtr(t, "09:30"), timePtr(t, "10:30"))
		assert.NoError(t, err)
	})

	t.Run("siblings without a window never conflict", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(1, 1, nil, nil),
			{ID: 2, StartTime: timePtr(t, "09:00"), EndTime: timePtr(t, "11:00")},
		}
		err := usecase.ValidateNoOverlap(siblings, nil, intPtr(1), timePtr(t, "09:00"), timePtr(t, "11:00"))
		assert.NoError(t, err)
	})

	t.Run("incomplete candidate window never conflicts", func(t *testing.T) {
		siblings := []*domain.CircuitStop{
			scheduledStop(1, 1, timePtr(t, "09:00"), timePtr(t, "11:00")),
		}
		assert.NoError(t, usecase.ValidateNoOverlap(siblings, nil, nil, timePtr(t, "09:00"), timePtr(t, "11:00")))
		assert.NoError(t, usecase.ValidateNoOverlap(siblings, nil, intPtr(1), nil, nil))
	})
}
