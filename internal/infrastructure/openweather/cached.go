package openweather

import (
	"context"
	"strings"
	"time"

	"github.com/tour-planning-service/internal/domain/repository"
	"go.uber.org/zap"
)

type cachedProvider struct {
	inner  repository.WeatherProvider
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedWeatherProvider decorates a weather provider with a redis-backed
// cache keyed by city and date, so repeated AI generations for the same trip
// do not re-hit the forecast API.
func NewCachedWeatherProvider(
	inner repository.WeatherProvider,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.WeatherProvider {
	return &cachedProvider{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (p *cachedProvider) GetWeatherSummary(ctx context.Context, cityName, date string) string {
	key := "weather:" + strings.ToLower(cityName) + ":" + date

	if cached, err := p.cache.Get(ctx, key); err != nil {
		p.logger.Warn("Weather cache read failed", zap.String("key", key), zap.Error(err))
	} else if cached != "" {
		return cached
	}

	summary := p.inner.GetWeatherSummary(ctx, cityName, date)

	if err := p.cache.Set(ctx, key, summary, p.ttl); err != nil {
		p.logger.Warn("Weather cache write failed", zap.String("key", key), zap.Error(err))
	}

	return summary
}
