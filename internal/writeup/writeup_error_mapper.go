package writeup

import (
	"errors"

	writeuperrors "go-writeup/internal/writeup/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return writeuperrors.ErrWriteUpNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return writeuperrors.ErrInvalidReference.WithCause(err)
		case "22P02":
			return writeuperrors.ErrInvalidWriteUpID
		}
	}

	return err
}

// notFoundAs keeps the caller's catalog error for lookups into other
// modules' tables.
func notFoundAs(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
