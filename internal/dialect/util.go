package dialect

import (
	"context"
	"database/sql/driver"
	"errors"
)

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}

// DefaultIsExecutionError treats every driver error as operational, except
// cancellation and broken connections which are not caused by the query itself.
func DefaultIsExecutionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return false
	}
	return true
}
