package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string `validate:"required,oneof=development test production"`
	Port           string `validate:"required,numeric"`
	AllowedOrigins string
	LogLevel       string `validate:"oneof=debug info warn error"`

	Locale   string `validate:"required"`
	AppName  string `validate:"required"`
	ShareURL string `validate:"required,url"`

	StreakTick       time.Duration `validate:"gt=0"`
	StreakMaxSteps   int           `validate:"min=1"`
	BadgeRevealDelay time.Duration `validate:"gte=0"`

	ResultDuration     time.Duration `validate:"gt=0"`
	ResultSteps        int           `validate:"min=1"`
	RankingRevealDelay time.Duration `validate:"gte=0"`
	RankingTopN        int           `validate:"min=1,max=50"`
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),

		Locale:   getEnv("LOCALE", "de"),
		AppName:  getEnv("APP_NAME", "SpanischMitBelu"),
		ShareURL: getEnv("SHARE_URL", "https://app.spanischmitbelu.com"),
	}

	var err error
	if cfg.StreakTick, err = parseDuration("STREAK_TICK", "40ms"); err != nil {
		return nil, err
	}
	if cfg.BadgeRevealDelay, err = parseDuration("BADGE_REVEAL_DELAY", "600ms"); err != nil {
		return nil, err
	}
	if cfg.ResultDuration, err = parseDuration("RESULT_DURATION", "1200ms"); err != nil {
		return nil, err
	}
	if cfg.RankingRevealDelay, err = parseDuration("RANKING_REVEAL_DELAY", "800ms"); err != nil {
		return nil, err
	}
	if cfg.StreakMaxSteps, err = parseInt("STREAK_MAX_STEPS", 25); err != nil {
		return nil, err
	}
	if cfg.ResultSteps, err = parseInt("RESULT_STEPS", 30); err != nil {
		return nil, err
	}
	if cfg.RankingTopN, err = parseInt("RANKING_TOP_N", 5); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
