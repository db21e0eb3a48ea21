package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"rainbox/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL COLLATE NOCASE,
	email TEXT NOT NULL COLLATE NOCASE,
	password_hash TEXT NOT NULL,
	api_key TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);
`

// SQLiteStorage implements the Storage interface using SQLite via the
// CGO-free modernc.org/sqlite driver. The schema is created on startup.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(config Config) (*SQLiteStorage, error) {
	if config.ConnectionString == "" {
		return nil, fmt.Errorf("connection string is required for SQLite storage")
	}

	db, err := sql.Open("sqlite", config.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// CreateUser persists a new user, mapping unique-constraint violations to the
// package sentinels.
func (ss *SQLiteStorage) CreateUser(ctx context.Context, user *models.User) error {
	_, err := ss.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, api_key, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		nullable(user.APIKey), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// GetUserByUsername retrieves a user by username.
func (ss *SQLiteStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return ss.getUser(ctx, "username", username)
}

// GetUserByEmail retrieves a user by email.
func (ss *SQLiteStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return ss.getUser(ctx, "email", email)
}

func (ss *SQLiteStorage) getUser(ctx context.Context, column, value string) (*models.User, error) {
	user := &models.User{}
	var apiKey sql.NullString
	err := ss.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, username, email, password_hash, api_key, created_at, updated_at
		 FROM users WHERE %s = ?`, column), value).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&apiKey, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.APIKey = apiKey.String
	return user, nil
}

// Ping verifies the database connection is alive.
func (ss *SQLiteStorage) Ping(ctx context.Context) error {
	return ss.db.PingContext(ctx)
}

// Close closes the storage connection
func (ss *SQLiteStorage) Close() error {
	return ss.db.Close()
}

// mapSQLiteError converts driver unique-violation errors into the package
// sentinels. The driver reports constraint failures with the offending
// column in the message, e.g. "UNIQUE constraint failed: users.username".
func mapSQLiteError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: users.username"):
		return ErrDuplicateUsername
	case strings.Contains(msg, "UNIQUE constraint failed: users.email"):
		return ErrDuplicateEmail
	default:
		return fmt.Errorf("failed to create user: %w", err)
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
