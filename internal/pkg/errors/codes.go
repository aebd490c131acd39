package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidPosition = New(
		"INVALID_POSITION",
		"Position must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidStopKind = New(
		"INVALID_STOP_KIND",
		"Invalid stop kind: must be one of VISIT, EAT, SLEEP, TRANSPORT",
		http.StatusBadRequest,
	)

	ErrInvalidMealType = New(
		"INVALID_MEAL_TYPE",
		"Invalid meal type: must be one of BREAKFAST, LUNCH, DINNER",
		http.StatusBadRequest,
	)

	ErrInvalidSchedule = New(
		"INVALID_SCHEDULE",
		"Stop schedule is inconsistent",
		http.StatusBadRequest,
	)

	ErrScheduleOverlap = New(
		"SCHEDULE_OVERLAP",
		"Time window overlaps with another stop on the same day",
		http.StatusConflict,
	)

	ErrDuplicateStopPlace = New(
		"DUPLICATE_STOP_PLACE",
		"This place is already a stop in the circuit",
		http.StatusConflict,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrCircuitNotFound = New(
		"CIRCUIT_NOT_FOUND",
		"Circuit not found",
		http.StatusNotFound,
	)

	ErrStopNotFound = New(
		"CIRCUIT_STOP_NOT_FOUND",
		"Circuit stop not found",
		http.StatusNotFound,
	)

	ErrSessionNotFound = New(
		"CIRCUIT_SESSION_NOT_FOUND",
		"Circuit session not found",
		http.StatusNotFound,
	)

	ErrTransportOptionNotFound = New(
		"TRANSPORT_OPTION_NOT_FOUND",
		"Transport option not found",
		http.StatusNotFound,
	)

	ErrAiNotConfigured = New(
		"AI_NOT_CONFIGURED",
		"AI service is not configured",
		http.StatusBadRequest,
	)

	ErrAiServiceError = New(
		"AI_SERVICE_ERROR",
		"AI service request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
