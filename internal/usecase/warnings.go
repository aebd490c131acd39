package usecase

import (
	"fmt"
	"sort"

	"github.com/tour-planning-service/internal/domain"
)

// BuildPlanningWarnings runs the advisory analysis pass over a circuit's stop
// list: per-stop completeness checks, then per-day meal/sleep coverage. The
// result is deterministic for identical input — sorted by day (absent last),
// then stop id (absent last), then code.
func BuildPlanningWarnings(stops []*domain.CircuitStop) []domain.PlanningWarning {
	warnings := []domain.PlanningWarning{}
	byDay := make(map[int][]*domain.CircuitStop)

	for _, s := range stops {
		if s.DayNumber != nil {
			byDay[*s.DayNumber] = append(byDay[*s.DayNumber], s)
		}

		if s.DayNumber != nil && (s.StartTime == nil || s.EndTime == nil) {
			warnings = append(warnings, stopWarning(
				domain.WarningTimeWindowNotSet,
				"Stop has dayNumber but no startTime/endTime",
				s,
			))
		}

		if s.StopKind != nil && *s.StopKind == domain.StopKindEat && s.MealType == nil {
			warnings = append(warnings, stopWarning(
				domain.WarningMealTypeNotSet,
				"Meal stop is missing mealType (BREAKFAST/LUNCH/DINNER)",
				s,
			))
		}
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		warnings = append(warnings, dayCoverageWarnings(day, byDay[day])...)
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		if c := compareIntPtr(warnings[i].DayNumber, warnings[j].DayNumber); c != 0 {
			return c < 0
		}
		if c := compareInt64Ptr(warnings[i].StopID, warnings[j].StopID); c != 0 {
			return c < 0
		}
		return warnings[i].Code < warnings[j].Code
	})

	return warnings
}

func dayCoverageWarnings(day int, stops []*domain.CircuitStop) []domain.PlanningWarning {
	var hasSleep, hasAnyEat, hasBreakfast, hasLunch, hasDinner bool

	for _, s := range stops {
		if s.StopKind == nil {
			continue
		}
		switch *s.StopKind {
		case domain.StopKindSleep:
			hasSleep = true
		case domain.StopKindEat:
			hasAnyEat = true
			if s.MealType != nil {
				switch *s.MealType {
				case domain.MealTypeBreakfast:
					hasBreakfast = true
				case domain.MealTypeLunch:
					hasLunch = true
				case domain.MealTypeDinner:
					hasDinner = true
				}
			}
		}
	}

	var warnings []domain.PlanningWarning

	if !hasSleep {
		warnings = append(warnings, dayWarning(
			domain.WarningSleepMissing,
			fmt.Sprintf("No sleep stop on day %d", day),
			day,
		))
	}

	if !hasAnyEat {
		warnings = append(warnings, dayWarning(
			domain.WarningEatMissing,
			fmt.Sprintf("No meal stop on day %d", day),
			day,
		))
		return warnings
	}

	if !hasBreakfast {
		warnings = append(warnings, dayWarning(
			domain.WarningBreakfastMissing,
			fmt.Sprintf("No breakfast on day %d", day),
			day,
		))
	}
	if !hasLunch {
		warnings = append(warnings, dayWarning(
			domain.WarningLunchMissing,
			fmt.Sprintf("No lunch on day %d", day),
			day,
		))
	}
	if !hasDinner {
		warnings = append(warnings, dayWarning(
			domain.WarningDinnerMissing,
			fmt.Sprintf("No dinner on day %d", day),
			day,
		))
	}

	return warnings
}

func stopWarning(code, message string, s *domain.CircuitStop) domain.PlanningWarning {
	stopID := s.ID
	return domain.PlanningWarning{
		Code:      code,
		Message:   message,
		Severity:  domain.WarningSeverityInfo,
		DayNumber: s.DayNumber,
		StopID:    &stopID,
	}
}

func dayWarning(code, message string, day int) domain.PlanningWarning {
	d := day
	return domain.PlanningWarning{
		Code:      code,
		Message:   message,
		Severity:  domain.WarningSeverityInfo,
		DayNumber: &d,
	}
}

// compareIntPtr orders present values ascending, absent values last.
func compareIntPtr(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func compareInt64Ptr(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
