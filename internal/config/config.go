package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/luispabloln/control-biometrico/internal/models"
	"github.com/luispabloln/control-biometrico/internal/reconcile"
)

type Config struct {
	AppEnv            string
	Addr              string
	RosterSource      string
	LogsSource        string
	HolidaysSource    string
	Cutoff            models.ClockTime
	SourceTimeout     time.Duration
	AllowedOriginsRaw string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":8080"),
		RosterSource:      os.Getenv("ROSTER_SOURCE"),
		LogsSource:        os.Getenv("LOGS_SOURCE"),
		HolidaysSource:    os.Getenv("HOLIDAYS_SOURCE"),
		Cutoff:            reconcile.DefaultCutoff,
		SourceTimeout:     time.Duration(getEnvInt("SOURCE_TIMEOUT_SECONDS", 10)) * time.Second,
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", ""),
	}

	if raw := os.Getenv("CUTOFF"); raw != "" {
		cutoff, ok := models.ParseClockTime(raw)
		if !ok {
			return cfg, fmt.Errorf("invalid CUTOFF: %q", raw)
		}
		cfg.Cutoff = cutoff
	}

	missing := []string{}
	if cfg.RosterSource == "" {
		missing = append(missing, "ROSTER_SOURCE")
	}
	if cfg.LogsSource == "" {
		missing = append(missing, "LOGS_SOURCE")
	}
	if cfg.HolidaysSource == "" {
		missing = append(missing, "HOLIDAYS_SOURCE")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
