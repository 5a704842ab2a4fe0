package writeuperrors

import (
	"go-writeup/internal/shared/apperror"
	"net/http"
)

var (
	ErrWriteUpNotFound = apperror.New(
		apperror.CodeNotFound,
		"Write-up not found",
		http.StatusNotFound,
	)
	ErrInvalidWriteUpID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid write-up ID",
		http.StatusBadRequest,
	)
	ErrInvalidIncidentDate = apperror.New(
		apperror.CodeInvalidInput,
		"Incident date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidSignedDate = apperror.New(
		apperror.CodeInvalidInput,
		"Signed date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRuleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A rule is required for this category",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Conversation topic / reason is required",
		http.StatusBadRequest,
	)
	ErrRuleCategoryMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Rule does not belong to the selected category",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Employee, category or rule no longer exists",
		http.StatusBadRequest,
	)
	ErrCategoryInactive = apperror.New(
		apperror.CodeInvalidState,
		"Category is inactive",
		http.StatusUnprocessableEntity,
	)
)
