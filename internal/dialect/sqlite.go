package dialect

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SqliteDialect reads the catalog through the pragma table-valued functions,
// which accept the table name as a bound argument.
type SqliteDialect struct{}

func (d *SqliteDialect) GetTablesQuery(schema string) (string, []any) {
	return `SELECT name FROM sqlite_master WHERE type = 'table'`, nil
}

func (d *SqliteDialect) GetColumnsQuery(schema, table string) (string, []any) {
	return `SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, []any{table}
}

func (d *SqliteDialect) GetForeignKeysQuery(schema, table string) (string, []any) {
	return `SELECT "from", "table", "to" FROM pragma_foreign_key_list(?) ORDER BY id, seq`, []any{table}
}

func (d *SqliteDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}

// IsExecutionError reports operational result codes (bad SQL, missing
// objects, locking, I/O). Constraint, type and misuse failures are not.
func (d *SqliteDialect) IsExecutionError(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}

	switch se.Code() & 0xff {
	case sqlite3.SQLITE_ERROR,
		sqlite3.SQLITE_PERM,
		sqlite3.SQLITE_ABORT,
		sqlite3.SQLITE_BUSY,
		sqlite3.SQLITE_LOCKED,
		sqlite3.SQLITE_READONLY,
		sqlite3.SQLITE_INTERRUPT,
		sqlite3.SQLITE_IOERR,
		sqlite3.SQLITE_FULL,
		sqlite3.SQLITE_CANTOPEN,
		sqlite3.SQLITE_PROTOCOL,
		sqlite3.SQLITE_EMPTY,
		sqlite3.SQLITE_SCHEMA:
		return true
	default:
		// SQLITE_CONSTRAINT, SQLITE_MISMATCH, SQLITE_TOOBIG, SQLITE_MISUSE, SQLITE_RANGE, ...
		return false
	}
}
