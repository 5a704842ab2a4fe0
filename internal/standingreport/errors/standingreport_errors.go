package standingreporterrors

import (
	"go-writeup/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidQuarter = apperror.New(
		apperror.CodeInvalidInput,
		`Quarter must look like "2025 Q1"`,
		http.StatusBadRequest,
	)
	ErrInvalidTier = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown standing tier",
		http.StatusBadRequest,
	)
)
