// Package errors defines the application errors surfaced to callers.
package errors

import "net/http"

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

// Is matches errors by business code, so WithDetails copies still satisfy errors.Is
// against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Por favor, preencha todos os campos corretamente.",
		"",
	)

	// Not found
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Loja não encontrada",
		"",
	)

	ErrCatalogItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_ITEM_NOT_FOUND",
		"Componente não encontrado",
		"",
	)

	ErrBowlNotFound = NewBaseError(
		http.StatusNotFound,
		"BOWL_NOT_FOUND",
		"Pedido não encontrado",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	// Capability
	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Localização indisponível",
		"",
	)

	// Identity
	ErrRoleSelectionRequired = NewBaseError(
		http.StatusConflict,
		"ROLE_SELECTION_REQUIRED",
		"Escolha um perfil para continuar",
		"",
	)

	ErrRoleAlreadyAssigned = NewBaseError(
		http.StatusConflict,
		"ROLE_ALREADY_ASSIGNED",
		"Este usuário já possui um perfil",
		"",
	)

	ErrStoreAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_LINKED",
		"Este usuário já possui uma loja",
		"",
	)

	// Workflow
	ErrStatusTransition = NewBaseError(
		http.StatusConflict,
		"STATUS_TRANSITION_NOT_ALLOWED",
		"A situação desta loja não pode mais ser alterada",
		"",
	)

	ErrItemNotOffered = NewBaseError(
		http.StatusConflict,
		"ITEM_NOT_OFFERED",
		"Este componente não é oferecido pela loja",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Autenticação necessária",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)
)
