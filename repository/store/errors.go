package store

import (
	"database/sql"
	"errors"
	"fmt"

	"library/util/apperr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapErr translates driver failures into the shared error codes.
// entity names the record kind for the message, e.g. "book".
func MapErr(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.New(apperr.ErrNotFound, entity+" not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Wrap(apperr.ErrDuplicateKey, entity+" already exists ("+pgErr.ConstraintName+")", err)
		case pgerrcode.ForeignKeyViolation:
			return apperr.Wrap(apperr.ErrNotFound, "referenced record not found ("+pgErr.ConstraintName+")", err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return apperr.Wrap(apperr.ErrValidation, entity+" violates "+pgErr.ConstraintName, err)
		}
	}
	return fmt.Errorf("db error: %w", err)
}

// MapDeleteErr is MapErr for DELETE statements, where a foreign key
// violation means other rows still point at the record.
func MapDeleteErr(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return apperr.Wrap(apperr.ErrConflict, entity+" is still referenced ("+pgErr.ConstraintName+")", err)
	}
	return MapErr(entity, err)
}

// MustAffect returns NotFound when an UPDATE or DELETE matched no row.
func MustAffect(entity string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return apperr.New(apperr.ErrNotFound, entity+" not found")
	}
	return nil
}
