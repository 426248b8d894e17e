package errors

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the object store can hit
const (
	sqlStateNotNull           = "23502"
	sqlStateCheck             = "23514"
	sqlStateStringTruncation  = "22001"
	sqlStateInvalidText       = "22P02"
	sqlStateReadOnly          = "25006"
	sqlStateCannotConnectNow  = "57P03"
	sqlStateTooManyConnection = "53300"
)

// pgCode maps a Postgres error to a code, ok is false for non pg errors
func pgCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case sqlStateNotNull, sqlStateCheck:
		return ErrorCodeValidation, true
	case sqlStateStringTruncation, sqlStateInvalidText:
		return ErrorCodeInvalidArgument, true
	case sqlStateReadOnly, sqlStateCannotConnectNow, sqlStateTooManyConnection:
		return ErrorCodeUnavailable, true
	}
	// includes a missing objects table
	return ErrorCodeDB, true
}

// FromPostgres wraps a database error with a code derived from its SQLSTATE
// nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := pgCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a format
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}
