package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	AI       AIConfig
	Weather  WeatherConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	WeatherCacheTTL time.Duration
}

type AIConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    float64
	MaxTokens      int
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

type WeatherConfig struct {
	BaseURL        string
	APIKey         string
	CountryCode    string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			WeatherCacheTTL: time.Duration(viper.GetInt("WEATHER_CACHE_TTL")) * time.Second,
		},
		AI: AIConfig{
			BaseURL:        viper.GetString("AI_BASE_URL"),
			APIKey:         viper.GetString("AI_API_KEY"),
			Model:          viper.GetString("AI_MODEL"),
			Temperature:    viper.GetFloat64("AI_TEMPERATURE"),
			MaxTokens:      viper.GetInt("AI_MAX_TOKENS"),
			ConnectTimeout: time.Duration(viper.GetInt("AI_CONNECT_TIMEOUT")) * time.Second,
			RequestTimeout: time.Duration(viper.GetInt("AI_REQUEST_TIMEOUT")) * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL:        viper.GetString("WEATHER_BASE_URL"),
			APIKey:         viper.GetString("WEATHER_API_KEY"),
			CountryCode:    viper.GetString("WEATHER_COUNTRY_CODE"),
			RequestTimeout: time.Duration(viper.GetInt("WEATHER_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.WeatherCacheTTL == 0 {
		cfg.Cache.WeatherCacheTTL = 30 * time.Minute
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "llama-3.3-70b-versatile"
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.2
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 10000
	}
	if cfg.AI.ConnectTimeout == 0 {
		cfg.AI.ConnectTimeout = 10 * time.Second
	}
	if cfg.AI.RequestTimeout == 0 {
		cfg.AI.RequestTimeout = 30 * time.Second
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Weather.CountryCode == "" {
		cfg.Weather.CountryCode = "MA"
	}
	if cfg.Weather.RequestTimeout == 0 {
		cfg.Weather.RequestTimeout = 10 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
