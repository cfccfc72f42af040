package auth

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/plumeworks/plume-backend/internal/db"
)

// Store mediates all reads and writes of user records. It runs every query
// over the request's single connection, obtained lazily from the provider.
type Store struct {
	provider *db.Provider
}

func NewStore(p *db.Provider) *Store {
	return &Store{provider: p}
}

// CreateUser hashes the password and inserts a new user row, returning the
// assigned id. The insert alone enforces username uniqueness, so two
// concurrent registrations of the same name cannot both succeed.
func (s *Store) CreateUser(ctx context.Context, username, password string) (int64, error) {
	username = norm.NFC.String(username)
	if username == "" {
		return 0, &ValidationError{Field: "Username"}
	}
	if password == "" {
		return 0, &ValidationError{Field: "Password"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	res, err := conn.ExecContext(ctx,
		`INSERT INTO user (username, password_hash) VALUES (?, ?)`,
		username, string(hashed))
	if err != nil {
		var serr *sqlite.Error
		if errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return 0, &DuplicateUsernameError{Username: username}
		}
		return 0, err
	}

	return res.LastInsertId()
}

// FindByUsername returns the matching user, or nil when no such user exists.
// Absence is a normal outcome, not an error.
func (s *Store) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.find(ctx,
		`SELECT id, username, password_hash FROM user WHERE username = ?`,
		norm.NFC.String(username))
}

// FindByID is the same lookup keyed by id.
func (s *Store) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.find(ctx,
		`SELECT id, username, password_hash FROM user WHERE id = ?`, id)
}

func (s *Store) find(ctx context.Context, query string, arg any) (*User, error) {
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var user User
	if err := conn.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
