package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int
	LogLevel        logrus.Level
}

// ProcessEnvironmentVariables loads .env when present and applies environment overrides.
func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return fromEnvironment()
}

func fromEnvironment() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		OperatorWorkers:  1,
		LogLevel:         logrus.InfoLevel,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		port, err := strconv.Atoi(envHTTPPort)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid HTTP_PORT %q: must be between 1 and 65535", envHTTPPort)
		}
		env.HTTPPort = envHTTPPort
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: must be a positive number", envOperatorWorkers)
		}
		env.OperatorWorkers = workers
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", envLogLevel, err)
		}
		env.LogLevel = level
	}

	return &env, nil
}

// PostgresConnectionString builds the lib/pq connection URL.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
