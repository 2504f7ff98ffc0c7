package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds everything the process needs to start. Environment variables
// win over flags; a .env file, if present, is loaded into the environment
// before parsing.
type Config struct {
	HTTPPort   string        `env:"HTTP_PORT"`
	DBHost     string        `env:"DB_HOST"`
	DBPort     string        `env:"DB_PORT"`
	DBUser     string        `env:"DB_USER"`
	DBPassword string        `env:"DB_PASSWORD"`
	DBName     string        `env:"DB_NAME"`
	DBSslMode  string        `env:"DB_SSLMODE"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"`
	LogLevel   string        `env:"LOG_LEVEL"`
}

// InitConfig parses command line flags and environment variables.
func InitConfig() (config Config) {
	flag.StringVar(&config.HTTPPort, "p", "8080", "http port to listen on")
	flag.StringVar(&config.DBHost, "db-host", "localhost", "database host")
	flag.StringVar(&config.DBPort, "db-port", "5432", "database port")
	flag.StringVar(&config.DBUser, "db-user", "postgres", "database user")
	flag.StringVar(&config.DBPassword, "db-password", "", "database password")
	flag.StringVar(&config.DBName, "db-name", "orderlink", "database name")
	flag.StringVar(&config.DBSslMode, "db-sslmode", "disable", "database ssl mode")
	flag.StringVar(&config.JWTSecret, "jwt-secret", "", "secret for signing access tokens")
	flag.DurationVar(&config.TokenTTL, "token-ttl", 24*time.Hour, "access token lifetime")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}

// DSN builds the Postgres connection string from the database fields.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
