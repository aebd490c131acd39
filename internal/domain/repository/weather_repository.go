package repository

import "context"

// WeatherProvider returns a one-line forecast summary for a city and date.
// It degrades to an "unavailable" message rather than failing; the summary is
// only ever used as prompt context.
type WeatherProvider interface {
	GetWeatherSummary(ctx context.Context, cityName, date string) string
}
