package sqlerr

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Reason is the coarse failure category reported to callers of the
// query façade. It tells apart the three ways a store operation is
// rejected without leaking driver types.
type Reason string

const (
	// ReasonNone is the zero value used for successful operations.
	ReasonNone Reason = ""

	// ReasonConstraintViolation: the store rejected the data (unique,
	// not-null, foreign key, check).
	ReasonConstraintViolation Reason = "constraint_violation"

	// ReasonConnectivity: the store could not be reached or the call
	// timed out or was cancelled.
	ReasonConnectivity Reason = "connectivity"

	// ReasonMalformedQuery: the statement or its arguments were not
	// accepted (syntax, unknown relation, bad value, scan mismatch).
	ReasonMalformedQuery Reason = "malformed_query"

	// ReasonUnknown: anything else.
	ReasonUnknown Reason = "unknown"
)

func (r Reason) String() string {
	if r == ReasonNone {
		return "none"
	}
	return string(r)
}

// Classify maps an error returned by pgx into a Reason.
// A nil error classifies as ReasonNone.
func Classify(err error) Reason {
	if err == nil {
		return ReasonNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return reasonForSQLState(pgErr.Code)
	}

	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return reasonForSQLState(sqlErr.DatabaseCode)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ReasonConnectivity
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return ReasonConnectivity
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ReasonConnectivity
	}

	var scanErr pgx.ScanArgError
	if errors.As(err, &scanErr) {
		return ReasonMalformedQuery
	}

	return ReasonUnknown
}

func reasonForSQLState(code string) Reason {
	switch {
	case strings.HasPrefix(code, "23"):
		return ReasonConstraintViolation
	case strings.HasPrefix(code, "08"),
		code == "57P01", code == "57P02", code == "57P03",
		code == "57014", code == "53300":
		return ReasonConnectivity
	case strings.HasPrefix(code, "42"), strings.HasPrefix(code, "22"):
		return ReasonMalformedQuery
	default:
		return ReasonUnknown
	}
}
