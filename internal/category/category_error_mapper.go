package category

import (
	"errors"

	categoryerrors "go-writeup/internal/category/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_writeup_rules_category_name":
				return categoryerrors.ErrRuleAlreadyExists
			default:
				return categoryerrors.ErrCategoryAlreadyExists
			}
		case "23503":
			return categoryerrors.ErrCategoryInUse
		}
	}

	return err
}
