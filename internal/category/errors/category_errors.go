package categoryerrors

import (
	"go-writeup/internal/shared/apperror"
	"net/http"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rule not found",
		http.StatusNotFound,
	)
	ErrCategoryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Category with the same name already exists",
		http.StatusConflict,
	)
	ErrRuleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Rule with the same name already exists in this category",
		http.StatusConflict,
	)
	ErrCategoryInUse = apperror.New(
		apperror.CodeConflict,
		"Category still has write-ups; deactivate it instead",
		http.StatusConflict,
	)
	ErrInvalidCategoryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid category ID",
		http.StatusBadRequest,
	)
	ErrInvalidRuleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid rule ID",
		http.StatusBadRequest,
	)
	ErrRulesNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"Documented conversation categories do not carry rules",
		http.StatusUnprocessableEntity,
	)
)
