package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig centralizes the PostgreSQL connection parameters
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string

	// Connection pool tuning
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry behavior on startup
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the pgx connection pool and its lifecycle
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

func NewPostgresDB(cfg *DBConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry retries with a linearly growing delay between attempts.
// Retrying on startup covers the common case of the database container
// still warming up when the API starts.
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				log.Info().Int("attempt", attempt).Msg("database connected")
				return pool, nil
			}
		}

		log.Warn().Int("attempt", attempt).Err(lastErr).Msg("database connection failed")

		if attempt < db.Config.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(db.Config.RetryDelay * time.Duration(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// Connect establishes the connection pool
func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return err
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return err
	}

	db.Pool = pool
	return nil
}

// HealthCheck verifies the pool is still usable
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close releases the connection pool
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
