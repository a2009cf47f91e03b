package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the conversion service.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - Port: The port for the monitoring/API server.
// - EngineType: Which transformation engine to use (auto, proj, embedded).
// - Offline: Build the CRS pair from the embedded PROJJSON definitions
//   instead of registry codes (no proj.db required).
// - Workers: The number of concurrent workers for the backfill service.
// - Interval: The duration between backfill polling intervals.
// - Batch: Whether the database backfill service runs at all.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env        string         // Env is the current environment: local, dev, prod.
	Port       int            // Port is the monitoring/API server port.
	EngineType string         // EngineType specifies which transformation engine to use.
	Offline    bool           // Offline selects the embedded CRS definitions.
	Workers    int            // The number of concurrent workers for the backfill service.
	Interval   time.Duration  // The duration between backfill polling intervals.
	Batch      bool           // Batch enables the database backfill service.
	Database   PostgresConfig // Database holds the postgres database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a
// PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment (and an optional
// .env file) and returns a Config struct. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetEnvPrefix("SWEREF")
	vpr.AutomaticEnv()
	vpr.SetDefault("env", "production")
	vpr.SetDefault("health_port", "8080")
	vpr.SetDefault("engine", "auto")
	vpr.SetDefault("offline", false)
	vpr.SetDefault("workers", "10")
	vpr.SetDefault("interval", "10m")
	vpr.SetDefault("batch", false)

	interval, err := time.ParseDuration(vpr.GetString("interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(vpr.GetString("health_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(vpr.GetString("workers"))
	if err != nil {
		panic("failed to parse workers from configuration")
	}

	return &Config{
		Env:        vpr.GetString("env"),
		Port:       healthPort,
		EngineType: vpr.GetString("engine"),
		Offline:    vpr.GetBool("offline"),
		Workers:    workers,
		Interval:   interval,
		Batch:      vpr.GetBool("batch"),
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}
