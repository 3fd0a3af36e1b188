package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/flexstats/internal/logger"
)

type Config struct {
	Addr             string
	DBPath           string
	LogLevel         string
	HistoryWindow    int
	MaxSquadSize     int
	SquadConcurrency int
	MatchSizes       []int
	FetchTimeout     time.Duration
	WeightsPath      string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "file:flexstats.db"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		HistoryWindow:    envIntOr("HISTORY_WINDOW", 5),
		MaxSquadSize:     envIntOr("MAX_SQUAD_SIZE", 5),
		SquadConcurrency: envIntOr("SQUAD_CONCURRENCY", 5),
		MatchSizes:       envIntsOr("MATCH_SIZES", []int{5, 10}),
		FetchTimeout:     envDurationOr("FETCH_TIMEOUT", 10*time.Second),
		WeightsPath:      os.Getenv("MVP_WEIGHTS_PATH"),
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.HistoryWindow < 1 {
		problems = append(problems, fmt.Sprintf("HISTORY_WINDOW must be at least 1, got %d", c.HistoryWindow))
	}
	if c.MaxSquadSize < 1 || c.MaxSquadSize > 5 {
		problems = append(problems, fmt.Sprintf("MAX_SQUAD_SIZE must be between 1 and 5, got %d", c.MaxSquadSize))
	}
	if c.SquadConcurrency < 1 {
		problems = append(problems, fmt.Sprintf("SQUAD_CONCURRENCY must be at least 1, got %d", c.SquadConcurrency))
	}
	if len(c.MatchSizes) == 0 {
		problems = append(problems, "MATCH_SIZES cannot be empty")
	}
	for _, n := range c.MatchSizes {
		if n < 1 {
			problems = append(problems, fmt.Sprintf("MATCH_SIZES entries must be positive, got %d", n))
			break
		}
	}
	if c.FetchTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout))
	}
	if c.WeightsPath != "" {
		if _, err := os.Stat(c.WeightsPath); err != nil {
			problems = append(problems, fmt.Sprintf("MVP_WEIGHTS_PATH %q: %v", c.WeightsPath, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envIntsOr(key string, def []int) []int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Printf("invalid value for %s=%q, using default %v", key, v, def)
			return def
		}
		out = append(out, i)
	}
	return out
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
