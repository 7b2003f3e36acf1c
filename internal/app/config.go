package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Backend selects where grids come from.
const (
	BackendEndpoint = "endpoint" // the spreadsheet web endpoint (getData contract)
	BackendSheets   = "sheets"   // the Google spreadsheet itself
)

// Config is the process configuration, read once from the environment.
type Config struct {
	Backend         string
	EndpointURL     string
	CredentialsFile string
	SpreadsheetID   string
	Areas           []string
	ListenAddr      string
	PollInterval    time.Duration
}

// SetupEnvironment loads .env if present and configures zerolog output and
// level. Production gets unix-time JSON on stderr, everything else the
// console writer.
func SetupEnvironment() {
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	if levelStr == "" {
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	} else if level, perr := zerolog.ParseLevel(levelStr); perr == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// report on the .env file only after logging is set up
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig reads the process configuration, exiting on anything the
// server cannot run without.
func LoadConfig() Config {
	cfg := Config{
		Backend:      GetEnvWithDefault("VIEWER_BACKEND", BackendEndpoint),
		ListenAddr:   GetEnvWithDefault("LISTEN_ADDR", ":8080"),
		PollInterval: pollInterval(),
		Areas:        SplitList(os.Getenv("AREAS")),
	}

	switch cfg.Backend {
	case BackendEndpoint:
		cfg.EndpointURL = GetRequiredEnv("ENDPOINT_URL")
	case BackendSheets:
		cfg.CredentialsFile = GetEnvWithDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
		cfg.SpreadsheetID = GetRequiredEnv("SPREADSHEET_ID")
	default:
		log.Fatal().Str("backend", cfg.Backend).Msg("Unknown VIEWER_BACKEND, expected endpoint or sheets")
	}

	if len(cfg.Areas) == 0 {
		log.Fatal().Msg("AREAS environment variable is required (comma-separated area names)")
	}

	return cfg
}

func pollInterval() time.Duration {
	raw := GetEnvWithDefault("POLL_INTERVAL_SECONDS", "30")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Warn().Str("value", raw).Msg("Invalid POLL_INTERVAL_SECONDS, defaulting to 30")
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// SplitList parses a comma-separated env value, trimming entries and
// dropping empty ones.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// GetRequiredEnv fetches a required environment variable or exits if not set.
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msgf("%s environment variable is required", key)
	}
	return value
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
