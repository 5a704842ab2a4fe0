package employee

import (
	"errors"

	employeeerrors "go-writeup/internal/employee/errors"
	"go-writeup/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.ErrConflict.WithCause(err)
		case "22P02":
			// invalid_text_representation, biasanya uuid yang rusak
			return employeeerrors.ErrInvalidEmployeeID
		}
	}

	return err
}
