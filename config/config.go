package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported values for DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	DATA_SOURCE=csv
//	DATA_FILE=dashboard/df_day.csv
//	LOG_LEVEL=info
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=bikepulse
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Data     DataConfig     // where the rental dataset is read from
	Log      LogConfig      // logger settings
	Postgres PostgresConfig // PostgreSQL connection settings, used by the postgres source only
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // TCP port the HTTP server listens on (e.g., "8080")
	RateLimit      int           // requests per minute per client IP, 0 disables
	RequestTimeout time.Duration // per-request deadline
}

// DataConfig selects the dataset location.
//
// Fields:
//   - Source: "csv" reads File, "postgres" reads Table.
//   - File: path of the daily rentals CSV.
//   - Table: read-only table holding dteday, season and cnt columns.
type DataConfig struct {
	Source string
	File   string
	Table  string
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string
	Pretty bool
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by the rest of the application.
var AppConfig Config

// LoadConfig reads the configuration with ReadConfig and validates it.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	ReadConfig()
	validateConfig()
}

// ReadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables, without validating it. Callers
// that override values (e.g., from CLI flags) validate afterwards.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func ReadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 0)
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("DATA_SOURCE", SourceCSV)
	viper.SetDefault("DATA_FILE", "dashboard/df_day.csv")
	viper.SetDefault("DATA_TABLE", "daily_rentals")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "bikepulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RateLimit:      viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Data: DataConfig{
			Source: strings.ToLower(strings.TrimSpace(viper.GetString("DATA_SOURCE"))),
			File:   viper.GetString("DATA_FILE"),
			Table:  viper.GetString("DATA_TABLE"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()
}

// DSN builds the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

// Validate reports the variables that are absent or invalid for c.
func (c Config) Validate() error {
	if missing := missingKeys(c); len(missing) > 0 {
		return fmt.Errorf("missing or invalid environment variables: %v", missing)
	}
	return nil
}

// validateConfig terminates the application with log.Fatalf when
// AppConfig does not validate.
func validateConfig() {
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("❌ %v\n", err)
	}
}

// missingKeys lists the variables that are absent or invalid. Postgres
// settings are only required when the dataset is read from Postgres.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}

	switch cfg.Data.Source {
	case SourceCSV:
		if cfg.Data.File == "" {
			missing = append(missing, "DATA_FILE")
		}
	case SourcePostgres:
		if cfg.Data.Table == "" {
			missing = append(missing, "DATA_TABLE")
		}
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		missing = append(missing, "DATA_SOURCE")
	}

	return missing
}
