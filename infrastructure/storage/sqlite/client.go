// ABOUTME: SQLite-backed user store for registration, login tokens and profile lookups
// ABOUTME: Persists accounts in a single users table that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"careercompass-api/core/domain"
	coreerrors "careercompass-api/core/errors"
)

// Store implements interfaces.UserStorage using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteStore opens (or creates) the database file and ensures the schema exists
func NewSQLiteStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "careercompass.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite serialises writers; one connection avoids "database is locked" under load
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the users table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'student',
			token TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_users_token ON users(token);
	`

	_, err := s.db.Exec(query)
	return err
}

const selectUser = "SELECT id, name, email, password_hash, role, token FROM users"

// Create inserts a new user. A duplicate email yields a ConflictError.
func (s *Store) Create(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role, token)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), nullable(user.Token))
	if err != nil {
		if isUniqueViolation(err) {
			return &coreerrors.ConflictError{Resource: "user", Field: "email", Value: user.Email}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (s *Store) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, nil
	}
	return s.getOne(ctx, selectUser+" WHERE id = ?", id)
}

// GetByEmail retrieves a user by email
func (s *Store) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	return s.getOne(ctx, selectUser+" WHERE email = ?", email)
}

// GetByToken retrieves the user currently holding token
func (s *Store) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	return s.getOne(ctx, selectUser+" WHERE token = ?", token)
}

// UpdateToken replaces the stored token; an empty token clears it
func (s *Store) UpdateToken(ctx context.Context, id, token string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET token = ? WHERE id = ?", nullable(token), id)
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}
	if n == 0 {
		return &coreerrors.NotFoundError{Resource: "user", ID: id}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Stats returns store statistics
func (s *Store) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var users int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		return nil, err
	}
	stats["total_users"] = users

	var sessions int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE token IS NOT NULL").Scan(&sessions); err != nil {
		return nil, err
	}
	stats["active_tokens"] = sessions

	var pageCount, pageSize int
	if err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = s.filePath

	return stats, nil
}

func (s *Store) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var (
		u     domain.User
		role  string
		token sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u.Role = domain.Role(role)
	u.Token = token.String
	return &u, nil
}

func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}
