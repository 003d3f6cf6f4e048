package api

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	platformobservability "github.com/Apurer/go-gin-pizza-api/internal/platform/observability"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                  string        `env:"PORT" envDefault:"8080"`
	Environment           string        `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel              string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode               string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	BacklogReportSchedule string        `env:"BACKLOG_REPORT_SCHEDULE" envDefault:"@every 1m"`
	BacklogReportDisabled bool          `env:"BACKLOG_REPORT_DISABLED"`
	OTLPEndpoint          string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure          bool          `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

// LoadConfig reads the optional dotenv files, parses environment variables,
// applies defaults, and validates basic constraints. Variables already present
// in the environment win over dotenv values. With no files given, ".env" is tried.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot express.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if _, err := platformobservability.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.GinMode)
	}
	if !c.BacklogReportDisabled && c.BacklogReportSchedule == "" {
		return errors.New("BACKLOG_REPORT_SCHEDULE must be set unless BACKLOG_REPORT_DISABLED is true")
	}
	return nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
