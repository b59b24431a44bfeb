package dialect

type PostgresDialect struct{}

func (d *PostgresDialect) GetTablesQuery(schema string) (string, []any) {
	// use $1 placeholder
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE'`, []any{schema}
}

func (d *PostgresDialect) GetColumnsQuery(schema, table string) (string, []any) {
	// Subquery used to fetch PRIMARY KEY membership per column.
	return `SELECT 
    c.ordinal_position, 
    c.column_name, 
    c.data_type, 
    CASE WHEN c.is_nullable = 'NO' THEN 1 ELSE 0 END, 
    c.column_default, 
    CASE WHEN EXISTS (SELECT 1 FROM information_schema.table_constraints tc 
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema 
     WHERE tc.constraint_type = 'PRIMARY KEY' 
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name) THEN 1 ELSE 0 END
FROM information_schema.columns c
WHERE c.table_schema = $1 AND c.table_name = $2 
ORDER BY c.ordinal_position`, []any{schema, table}
}

func (d *PostgresDialect) GetForeignKeysQuery(schema, table string) (string, []any) {
	return `SELECT kcu.column_name, ccu.table_name AS referenced_table_name, ccu.column_name AS referenced_column_name FROM information_schema.key_column_usage kcu JOIN information_schema.constraint_column_usage ccu ON kcu.constraint_name = ccu.constraint_name AND kcu.constraint_schema = ccu.constraint_schema JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name AND kcu.constraint_schema = tc.constraint_schema WHERE kcu.table_schema = $1 AND kcu.table_name = $2 AND tc.constraint_type = 'FOREIGN KEY' ORDER BY kcu.constraint_name, kcu.ordinal_position`, []any{schema, table}
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}

func (d *PostgresDialect) IsExecutionError(err error) bool {
	return DefaultIsExecutionError(err)
}
