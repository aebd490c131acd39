package domain

// Planning warning codes. Warnings are advisory findings about schedule
// completeness; they never block writes.
const (
	WarningTimeWindowNotSet = "TIME_WINDOW_NOT_SET"
	WarningMealTypeNotSet   = "MEAL_TYPE_NOT_SET"
	WarningSleepMissing     = "SLEEP_MISSING"
	WarningEatMissing       = "EAT_MISSING"
	WarningBreakfastMissing = "BREAKFAST_MISSING"
	WarningLunchMissing     = "LUNCH_MISSING"
	WarningDinnerMissing    = "DINNER_MISSING"
)

const WarningSeverityInfo = "INFO"

type PlanningWarning struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	DayNumber *int   `json:"day_number,omitempty"`
	StopID    *int64 `json:"stop_id,omitempty"`
}
