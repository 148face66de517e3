package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// AIConfig points at an OpenAI-compatible chat-completions endpoint.
type AIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// QuizConfig tunes the session composer.
type QuizConfig struct {
	// IncludeNeverAttempted sweeps never-attempted questions into revenge
	// mode (their last-attempt flag defaults to false).
	IncludeNeverAttempted bool `mapstructure:"include_never_attempted"`
	DailyRevisionCap      int  `mapstructure:"daily_revision_cap"`
	MaxGenerateCount      int  `mapstructure:"max_generate_count"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("REVENGE_VAULT")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")
	viper.BindEnv("ai.timeout_seconds", "AI_TIMEOUT_SECONDS")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("ai.timeout_seconds", 120)
	viper.SetDefault("quiz.include_never_attempted", true)
	viper.SetDefault("quiz.daily_revision_cap", 15)
	viper.SetDefault("quiz.max_generate_count", 20)
	viper.SetDefault("rate_limit.max_requests", 1000)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Mode == "release" && cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("ai.api_key must be set in release mode")
	}

	return &cfg, nil
}
