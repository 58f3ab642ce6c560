package errors

import (
	"fmt"
	"net/http"
	"strconv"

	"nutria/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so a copy made by WithDetails
// still matches its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Food-related errors
	ErrFoodNotFound = NewBaseError(
		http.StatusNotFound,
		"FOOD_NOT_FOUND",
		"food not found",
		"",
	)

	ErrInvalidFoodKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FOOD_KEY",
		"food id must be a kind digit (0 product, 1 recipe) followed by a number",
		"",
	)

	ErrUnknownNutrientField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_NUTRIENT_FIELD",
		"unknown nutrient field",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"amount must be a finite number greater than zero",
		"",
	)

	ErrMissingCalories = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CALORIES",
		"a product must declare its calories",
		"",
	)

	ErrInvalidEAN = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EAN",
		"ean must consist of digits only",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_EXISTS",
		"category already exists",
		"",
	)

	// Recipe-related errors
	ErrIngredientNotFound = NewBaseError(
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"ingredient not found",
		"",
	)

	ErrServingNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVING_NOT_FOUND",
		"serving not found",
		"",
	)

	// Authentication-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// NoFoodError is returned when a food reference is assigned a value that is
// neither a product nor a recipe.
type NoFoodError struct {
	Value any
}

// NewNoFoodError creates a NoFoodError carrying the rejected value
func NewNoFoodError(value any) *NoFoodError {
	return &NoFoodError{Value: value}
}

func (e *NoFoodError) Error() string {
	return fmt.Sprintf("not a food: %T(%v)", e.Value, e.Value)
}

func (e *NoFoodError) HTTPCode() int     { return http.StatusBadRequest }
func (e *NoFoodError) ErrorCode() string { return "NO_FOOD" }
func (e *NoFoodError) Message() string {
	return "an ingredient or serving must reference a product or a recipe"
}
func (e *NoFoodError) Details() string { return fmt.Sprintf("%T(%v)", e.Value, e.Value) }

// DivisionUndefinedError is returned when a derived value is rescaled from a
// current value that is unknown or zero.
type DivisionUndefinedError struct {
	Field   string
	Current *float64
}

// NewDivisionUndefinedError creates a DivisionUndefinedError for field
func NewDivisionUndefinedError(field string, current *float64) *DivisionUndefinedError {
	return &DivisionUndefinedError{Field: field, Current: current}
}

func (e *DivisionUndefinedError) Error() string {
	return "cannot rescale " + e.Field + " from " + e.currentString()
}

func (e *DivisionUndefinedError) currentString() string {
	if e.Current == nil {
		return "an unknown value"
	}

	return strconv.FormatFloat(*e.Current, 'g', -1, 64)
}

func (e *DivisionUndefinedError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *DivisionUndefinedError) ErrorCode() string { return "DIVISION_UNDEFINED" }
func (e *DivisionUndefinedError) Message() string {
	return "the current value is unknown or zero, so no scale factor can be computed"
}
func (e *DivisionUndefinedError) Details() string {
	return "field " + e.Field + " is " + e.currentString()
}

// UnresolvedReferenceError is returned when a stored food id no longer
// points at an existing product or recipe.
type UnresolvedReferenceError struct {
	Kind string
	ID   uint
	// Owner describes the referencing row, e.g. "ingredient 4"
	Owner string
}

func (e *UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf("unresolved %s reference %d", e.Kind, e.ID)
	if e.Owner != "" {
		msg += " from " + e.Owner
	}

	return msg
}

func (e *UnresolvedReferenceError) HTTPCode() int     { return http.StatusConflict }
func (e *UnresolvedReferenceError) ErrorCode() string { return "UNRESOLVED_REFERENCE" }
func (e *UnresolvedReferenceError) Message() string {
	return "a referenced food no longer exists"
}
func (e *UnresolvedReferenceError) Details() string { return e.Error() }

// MalformedNameError is returned when a combined display name has no
// category part but one is required.
type MalformedNameError struct {
	Name string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed food name %q", e.Name)
}

func (e *MalformedNameError) HTTPCode() int     { return http.StatusBadRequest }
func (e *MalformedNameError) ErrorCode() string { return "MALFORMED_NAME" }
func (e *MalformedNameError) Message() string {
	return `food names must have the form "Category: Item"`
}
func (e *MalformedNameError) Details() string { return e.Name }

// RecursionDepthError is returned when recipe nesting exceeds the allowed
// depth, which in practice means the recipe graph contains a cycle.
type RecursionDepthError struct {
	RecipeID uint
	Depth    int
}

func (e *RecursionDepthError) Error() string {
	return fmt.Sprintf("recipe %d nested deeper than %d levels", e.RecipeID, e.Depth)
}

func (e *RecursionDepthError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *RecursionDepthError) ErrorCode() string { return "RECIPE_TOO_DEEP" }
func (e *RecursionDepthError) Message() string {
	return "the recipe is nested too deeply or contains itself"
}
func (e *RecursionDepthError) Details() string { return e.Error() }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
