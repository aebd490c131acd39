package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tour-planning-service/internal/config"
	"github.com/tour-planning-service/internal/domain/repository"
	"go.uber.org/zap"
)

const unavailable = "Weather data unavailable."

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	countryCode string
	logger      *zap.Logger
}

// NewWeatherProvider builds a 5-day-forecast summary provider over the
// OpenWeatherMap API. Every failure path degrades to an "unavailable" string;
// the summary is only prompt context and must never fail the caller.
func NewWeatherProvider(cfg *config.WeatherConfig, logger *zap.Logger) repository.WeatherProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		countryCode: cfg.CountryCode,
		logger:      logger,
	}
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *client) GetWeatherSummary(ctx context.Context, cityName, date string) string {
	if c.apiKey == "" {
		return "Weather data unavailable (API key not configured)."
	}

	query := url.Values{}
	query.Set("q", cityName+","+c.countryCode)
	query.Set("units", "metric")
	query.Set("cnt", "40")
	query.Set("appid", c.apiKey)

	reqURL := c.baseURL + "/forecast?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Warn("Failed to create forecast request", zap.Error(err))
		return unavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to fetch weather",
			zap.String("city", cityName), zap.Error(err))
		return unavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Failed to read forecast response", zap.Error(err))
		return unavailable
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("OpenWeatherMap returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return unavailable
	}

	var forecast forecastResponse
	if err := json.Unmarshal(raw, &forecast); err != nil {
		c.logger.Warn("Failed to decode forecast response", zap.Error(err))
		return unavailable
	}

	return summarize(&forecast, date)
}

// summarize folds the 3-hour forecast entries matching the target date into a
// one-line min/max + description summary.
func summarize(forecast *forecastResponse, date string) string {
	var (
		found       bool
		minTemp     float64
		maxTemp     float64
		description string
	)

	for _, entry := range forecast.List {
		if !strings.HasPrefix(entry.DtTxt, date) {
			continue
		}

		if !found {
			minTemp = entry.Main.TempMin
			maxTemp = entry.Main.TempMax
			found = true
		} else {
			if entry.Main.TempMin < minTemp {
				minTemp = entry.Main.TempMin
			}
			if entry.Main.TempMax > maxTemp {
				maxTemp = entry.Main.TempMax
			}
		}

		if description == "" && len(entry.Weather) > 0 {
			description = entry.Weather[0].Description
		}
	}

	if !found {
		return fmt.Sprintf("No forecast available for %s (may be beyond 5-day range).", date)
	}

	summary := fmt.Sprintf("Forecast for %s: %.0f-%.0f°C", date, minTemp, maxTemp)
	if description != "" {
		summary += ", " + description
	}
	return summary
}
