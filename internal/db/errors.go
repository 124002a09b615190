package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrNoRows = errors.New("no rows in result set")

// NotFoundError reports a lookup by primary key that matched nothing.
// It matches ErrNoRows under errors.Is.
type NotFoundError struct {
	Table string
	ID    string
}

func NotFound(table, id string) error {
	return &NotFoundError{Table: table, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Table, e.ID, ErrNoRows)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNoRows
}

// IsNoRows reports whether err means a row was missing, from either backend.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}
