package store

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Infrastructure facts returned by the stores, optionally wrapped. Services
// translate them into their own errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrUnavailable = errors.New("store unavailable")
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	mysqlLockWaitTimeout = 1205
)

// ConflictError reports a unique constraint violation raised by the database.
// Constraint holds the violated index name when the driver exposes it.
type ConflictError struct {
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	if e.Constraint == "" {
		return "unique constraint violation"
	}
	return "unique constraint violation on " + e.Constraint
}

func (e *ConflictError) Unwrap() error { return e.Err }

// classify maps driver and gorm errors onto the store's error vocabulary.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	// Waiting for a pooled connection ends at the operation deadline.
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &ConflictError{Constraint: pgErr.ConstraintName, Err: err}
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return &ConflictError{Constraint: mysqlKeyName(myErr.Message), Err: err}
		case mysqlLockWaitTimeout:
			return errors.Join(ErrUnavailable, err)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Err: err}
	}
	return err
}

// mysqlKeyName extracts the key from "Duplicate entry 'x' for key 'citizens.idx_citizens_nin'".
func mysqlKeyName(msg string) string {
	const marker = "for key '"
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return ""
	}
	key := strings.TrimSuffix(msg[i+len(marker):], "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key
}
