package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rainbox/internal/models"
)

// postgresSchema is executed statement by statement since the extended
// protocol does not accept multi-statement commands. Uniqueness is enforced
// case-insensitively to match the other backends; pgx reports violations
// under the index name.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		password_hash TEXT NOT NULL,
		api_key VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (LOWER(username))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (LOWER(email))`,
}

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresStorage implements the Storage interface using PostgreSQL via pgx.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates a new PostgreSQL storage instance.
func NewPostgresStorage(config Config) (*PostgresStorage, error) {
	if config.ConnectionString == "" {
		return nil, fmt.Errorf("connection string is required for PostgreSQL storage")
	}

	poolCfg, err := pgxpool.ParseConfig(config.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if config.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(config.MaxOpenConns)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(context.Background(), stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &PostgresStorage{pool: pool}, nil
}

// CreateUser persists a new user, mapping unique-constraint violations to the
// package sentinels by constraint name.
func (ps *PostgresStorage) CreateUser(ctx context.Context, user *models.User) error {
	_, err := ps.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, api_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.APIKey, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return ErrDuplicateUsername
			case "users_email_key":
				return ErrDuplicateEmail
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by username.
func (ps *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return ps.getUser(ctx,
		`SELECT id, username, email, password_hash, COALESCE(api_key, ''), created_at, updated_at
		 FROM users WHERE LOWER(username) = LOWER($1)`, username)
}

// GetUserByEmail retrieves a user by email.
func (ps *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return ps.getUser(ctx,
		`SELECT id, username, email, password_hash, COALESCE(api_key, ''), created_at, updated_at
		 FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (ps *PostgresStorage) getUser(ctx context.Context, query, arg string) (*models.User, error) {
	user := &models.User{}
	err := ps.pool.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.APIKey, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Ping verifies the database connection is alive.
func (ps *PostgresStorage) Ping(ctx context.Context) error {
	return ps.pool.Ping(ctx)
}

// Close closes the connection pool.
func (ps *PostgresStorage) Close() error {
	ps.pool.Close()
	return nil
}
