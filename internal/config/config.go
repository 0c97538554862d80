// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Artifact sources.
const (
	SourceDisk     = "disk"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceRedis    = "redis"
)

// Config holds all process settings.
type Config struct {
	// Listeners
	Addr     string
	GRPCAddr string

	// Artifacts
	ArtifactSource string
	ArtifactDir    string
	ModelArtifact  string
	ScalerArtifact string
	ONNXRuntimeLib string
	DatabaseURL    string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// Behaviour
	PredictDelay    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration with defaults applied.
func Load() *Config {
	return &Config{
		Addr:     getEnvString("ADDR", ":8080"),
		GRPCAddr: getEnvString("GRPC_ADDR", ""),

		ArtifactSource: getEnvString("ARTIFACT_SOURCE", SourceDisk),
		ArtifactDir:    getEnvString("ARTIFACT_DIR", "."),
		ModelArtifact:  getEnvString("MODEL_ARTIFACT", "diabetes_model.json"),
		ScalerArtifact: getEnvString("SCALER_ARTIFACT", "scaler.json"),
		ONNXRuntimeLib: getEnvString("ONNXRUNTIME_LIB", ""),
		DatabaseURL:    getEnvString("DATABASE_URL", ""),
		SQLitePath:     getEnvString("SQLITE_PATH", "artifacts.db"),
		RedisAddr:      getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnvString("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisKeyPrefix: getEnvString("REDIS_KEY_PREFIX", "artifact:"),

		PredictDelay:    getEnvDuration("PREDICT_DELAY", 0),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	switch c.ArtifactSource {
	case SourceDisk, SourceSQLite, SourceRedis:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres artifact source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ARTIFACT_SOURCE %q", c.ArtifactSource))
	}
	if c.ArtifactSource == SourceSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite artifact source"))
	}
	if c.ModelArtifact == "" || c.ScalerArtifact == "" {
		errs = append(errs, errors.New("MODEL_ARTIFACT and SCALER_ARTIFACT must not be empty"))
	}
	if c.PredictDelay < 0 {
		errs = append(errs, errors.New("PREDICT_DELAY must not be negative"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
