package user

import (
	"errors"

	"go-writeup/internal/shared/apperror"
	usererrors "go-writeup/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usererrors.ErrUserAlreadyExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return usererrors.ErrUserAlreadyExists.WithCause(err)
		case "23514":
			return usererrors.ErrInvalidRole.WithCause(err)
		case "22P02":
			return usererrors.ErrInvalidUserID
		}
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "user store failed", 500)
}
