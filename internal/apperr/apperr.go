// Package apperr holds the errors the API is allowed to show to a caller.
package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error is an anticipated failure carrying the HTTP status and the message sent back as {"msg": ...}.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

var (
	ErrBadRequest    = New(http.StatusBadRequest, "Bad Request!")
	ErrMissingInput  = New(http.StatusBadRequest, "Missing Input Data!")
	ErrInvalidSort   = New(http.StatusBadRequest, "Invalid Sort Query!")
	ErrInvalidOrder  = New(http.StatusBadRequest, "Invalid Order Query!")
	ErrInvalidLimit  = New(http.StatusBadRequest, "Invalid Limit Query!")
	ErrInvalidPage   = New(http.StatusBadRequest, "Invalid Page Query!")
	ErrNotFound      = New(http.StatusNotFound, "Resource not found!")
	ErrIDNotFound    = New(http.StatusNotFound, "ID not Found!")
	ErrInvalidURL    = New(http.StatusNotFound, "Invalid URL!")
	ErrAlreadyExists = New(http.StatusConflict, "Already Exists!")
	ErrInternal      = New(http.StatusInternalServerError, "Internal Server Error")
)

// PostgreSQL SQLSTATE codes that are safe to surface as client errors.
const (
	codeInvalidTextRepresentation = "22P02"
	codeNumericOutOfRange         = "22003"
	codeNotNullViolation          = "23502"
	codeForeignKeyViolation       = "23503"
	codeUniqueViolation           = "23505"
)

// Resolve turns err into a caller-facing error. The second result is false
// when err is not something the API anticipates; the caller should then log
// it and answer with ErrInternal.
func Resolve(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidTextRepresentation, codeNumericOutOfRange:
			return ErrBadRequest, true
		case codeNotNullViolation:
			return ErrMissingInput, true
		case codeForeignKeyViolation:
			return ErrNotFound, true
		case codeUniqueViolation:
			return ErrAlreadyExists, true
		}
	}

	return nil, false
}
