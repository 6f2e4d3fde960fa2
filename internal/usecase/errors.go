package usecase

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind tags a failure so the delivery layer can pick a status code.
type ErrorKind int

const (
	ErrKindInternal ErrorKind = iota
	ErrKindValidation
	ErrKindNotFound
	ErrKindUnauthorized
	ErrKindConflict
	// ErrKindUnauthenticated is an unauthorized failure caused by a missing or bad credential.
	ErrKindUnauthenticated
)

// AppError is the only error type usecases return to handlers. Field is set
// for validation errors tied to one request field.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches on kind and message so sentinels work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message && e.Field == t.Field
}

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case ErrKindValidation:
		return http.StatusBadRequest
	case ErrKindNotFound:
		return http.StatusNotFound
	case ErrKindUnauthorized:
		return http.StatusForbidden
	case ErrKindUnauthenticated:
		return http.StatusUnauthorized
	case ErrKindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (e *AppError) FieldName() string {
	return e.Field
}

func newError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// ValidationError names the offending request field.
func ValidationError(field, message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: message, Field: field}
}

func requiredField(field string) *AppError {
	return ValidationError(field, field+" is required")
}

// KindOf returns the kind of err, ErrKindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrKindInternal
}

var (
	ErrInternal = newError(ErrKindInternal, "an internal error occurred, please try again later")

	ErrUnauthenticated = newError(ErrKindUnauthenticated, "authentication required")
	ErrForbidden       = newError(ErrKindUnauthorized, "you are not allowed to perform this action")
	ErrNotDentist      = newError(ErrKindUnauthorized, "user is not authorized as a dentist")

	ErrUserNotFound            = newError(ErrKindNotFound, "user not found")
	ErrDentistNotFound         = newError(ErrKindNotFound, "dentist not found")
	ErrRoleNotFound            = newError(ErrKindNotFound, "role not found")
	ErrScheduleNotFound        = newError(ErrKindNotFound, "schedule not found")
	ErrServiceNotFound         = newError(ErrKindNotFound, "service not found")
	ErrServiceTypeNotFound     = newError(ErrKindNotFound, "service type not found")
	ErrAppointmentNotFound     = newError(ErrKindNotFound, "appointment not found")
	ErrAppointmentTypeNotFound = newError(ErrKindNotFound, "appointment type not found")
	ErrReminderNotFound        = newError(ErrKindNotFound, "reminder not found")
	ErrActivityLogNotFound     = newError(ErrKindNotFound, "activity log not found")

	ErrNoMatchingSchedule = newError(ErrKindValidation, "no schedule found for the selected dentist, day, and time")
	ErrInvalidCredentials = newError(ErrKindUnauthenticated, "invalid username/email or password")
	ErrAccountDisabled    = newError(ErrKindUnauthorized, "account is disabled")
	ErrInvalidToken       = newError(ErrKindUnauthenticated, "invalid or expired token")
	ErrTokenRevoked       = newError(ErrKindUnauthenticated, "token has been revoked")
	ErrWrongPassword      = newError(ErrKindValidation, "current password is incorrect")
	ErrUnknownRole        = newError(ErrKindValidation, "one or more roles do not exist")

	ErrUsernameAlreadyExists = newError(ErrKindConflict, "username already exists")
	ErrEmailAlreadyExists    = newError(ErrKindConflict, "email already exists")
	ErrRoleAlreadyExists     = newError(ErrKindConflict, "role already exists")
	ErrScheduleInUse         = newError(ErrKindConflict, "schedule is referenced by appointments and cannot be deleted")
	ErrRecordInUse           = newError(ErrKindConflict, "record is still referenced and cannot be deleted")
	ErrReminderConflict      = newError(ErrKindConflict, "reminder was saved concurrently, please retry")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
