package dto

type GenerateCircuitRequest struct {
	CityID       int64    `json:"city_id" validate:"required"`
	NumberOfDays int      `json:"number_of_days" validate:"required,min=1,max=14"`
	Interests    []string `json:"interests"`
	TravelDate   *string  `json:"travel_date" validate:"omitempty,datetime=2006-01-02"`
}

type SuggestPlacesRequest struct {
	Count       int      `json:"count" validate:"omitempty,min=1,max=20"`
	Preferences []string `json:"preferences"`
}

type ReorderResponse struct {
	CircuitID  int64   `json:"circuit_id"`
	OrderedIDs []int64 `json:"ordered_ids"`
}
