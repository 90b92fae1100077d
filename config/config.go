package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"timervid/types"
)

// Config carries everything the pipeline needs, resolved once at startup.
// Flags override environment variables, which override the package defaults.
type Config struct {
	Minutes int
	Seconds int

	AlarmPath      string
	OutputPath     string
	BackgroundPath string
	FontPath       string

	AlarmSeconds  int
	ToneFrequency int

	NoTUI   bool
	Verbose bool
}

// New returns a Config populated with defaults and environment overrides.
// Call godotenv.Load before this so a local .env is picked up.
func New() Config {
	return Config{
		AlarmPath:     envOr("TIMERVID_ALARM", DefaultAlarmPath),
		OutputPath:    envOr("TIMERVID_OUTPUT", DefaultOutputPath),
		FontPath:      envOr("TIMERVID_FONT", DefaultFontPath),
		AlarmSeconds:  envOrInt("TIMERVID_ALARM_SECONDS", DefaultAlarmSeconds),
		ToneFrequency: envOrInt("TIMERVID_FREQUENCY", DefaultToneFrequency),
	}
}

// Duration is the countdown length.
func (c Config) Duration() time.Duration {
	return time.Duration(c.TotalSeconds()) * time.Second
}

// TotalSeconds is the countdown length in whole seconds.
func (c Config) TotalSeconds() int {
	return c.Minutes*60 + c.Seconds
}

// AlarmDuration is the length of the alarm tail.
func (c Config) AlarmDuration() time.Duration {
	return time.Duration(c.AlarmSeconds) * time.Second
}

// Validate rejects configurations the pipeline cannot render.
func (c Config) Validate() error {
	if c.Minutes < 0 {
		return &types.ConfigError{Reason: fmt.Sprintf("minutes must not be negative, got %d", c.Minutes)}
	}
	if c.Seconds < 0 || c.Seconds > 59 {
		return &types.ConfigError{Reason: fmt.Sprintf("seconds must be in 0..59, got %d", c.Seconds)}
	}
	if c.TotalSeconds() == 0 {
		return &types.ConfigError{Reason: "timer duration is zero, nothing to render"}
	}
	if c.AlarmSeconds <= 0 {
		return &types.ConfigError{Reason: fmt.Sprintf("alarm duration must be positive, got %d", c.AlarmSeconds)}
	}
	if c.ToneFrequency <= 0 {
		return &types.ConfigError{Reason: fmt.Sprintf("tone frequency must be positive, got %d", c.ToneFrequency)}
	}
	if c.OutputPath == "" {
		return &types.ConfigError{Reason: "output path is empty"}
	}
	return nil
}

// envOr returns the value of the environment variable key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
