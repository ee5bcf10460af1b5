package config

import (
	"fmt"
	"time"

	"github.com/Axocidue/SportsStore/internal/infrastructure/database"
)

// LoadDatabaseConfig reads pool tuning from environment variables and
// returns the DBConfig the postgres wrapper expects.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	maxConnLifetime, err := time.ParseDuration(getEnv("DB_MAX_CONN_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME: %w", err)
	}

	maxConnIdleTime, err := time.ParseDuration(getEnv("DB_MAX_CONN_IDLE_TIME", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME: %w", err)
	}

	healthCheckPeriod, err := time.ParseDuration(getEnv("DB_HEALTH_CHECK_PERIOD", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_HEALTH_CHECK_PERIOD: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("DB_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              getEnvInt("DB_PORT", 5432),
		Username:          getEnv("DB_USER", "postgres"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "sportsstore"),
		MaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		MinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,
		MaxRetries:        getEnvInt("DB_MAX_RETRIES", 5),
		RetryDelay:        retryDelay,
		ConnectTimeout:    connectTimeout,
	}, nil
}
