package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr            string `envconfig:"HTTP_ADDR" default:":8080"`
	DBDriver            string `envconfig:"DB_DRIVER" default:"postgres"`
	DBConnectionString  string `envconfig:"DB_CONNECTION_STRING"`
	SQLitePath          string `envconfig:"SQLITE_PATH" default:"categories.db"`
	JWTSecret           string `envconfig:"JWT_SECRET"`
	LegacyRoutes        bool   `envconfig:"LEGACY_ROUTES" default:"false"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat           string `envconfig:"LOG_FORMAT" default:"json"`
	PprofAddr           string `envconfig:"PPROF_ADDR"`
	HealthCheckSchedule string `envconfig:"HEALTH_CHECK_SCHEDULE" default:"@every 5m"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("could not process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBConnectionString == "" {
			return errors.New("DB_CONNECTION_STRING is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.LogFormat)
	}
	if c.HealthCheckSchedule != "" {
		if _, err := cron.ParseStandard(c.HealthCheckSchedule); err != nil {
			return fmt.Errorf("invalid HEALTH_CHECK_SCHEDULE: %w", err)
		}
	}
	return nil
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// NewLogger builds the service logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if c.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
