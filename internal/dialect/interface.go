package dialect

// Dialect abstracts database-specific operations.
//
// Every metadata query returns the statement together with its bind args, and
// produces a normalized row shape so the schema package can scan any engine
// the same way:
//
//	tables:       name
//	columns:      position, name, declared type, not null (0/1), default, primary key (0/1)
//	foreign keys: column, referenced table, referenced column
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	GetTablesQuery(schema string) (string, []any)
	GetColumnsQuery(schema, table string) (string, []any)
	GetForeignKeysQuery(schema, table string) (string, []any)

	// Helpers
	GetSchemaName(input string) string

	// IsExecutionError reports whether err is a store-level operational failure
	// (malformed SQL, missing table or column, locked database, ...). Anything
	// else raised while running a query is treated as unexpected.
	IsExecutionError(err error) bool
}
