package dialect

type MysqlDialect struct{}

// An empty schema falls back to the database selected in the DSN.

func (d *MysqlDialect) GetTablesQuery(schema string) (string, []any) {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = COALESCE(NULLIF(?, ''), DATABASE()) AND TABLE_TYPE = 'BASE TABLE'`, []any{schema}
}

func (d *MysqlDialect) GetColumnsQuery(schema, table string) (string, []any) {
	return `SELECT ORDINAL_POSITION, COLUMN_NAME, COLUMN_TYPE, IF(IS_NULLABLE = 'NO', 1, 0), COLUMN_DEFAULT, IF(COLUMN_KEY = 'PRI', 1, 0) FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = COALESCE(NULLIF(?, ''), DATABASE()) AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION`, []any{schema, table}
}

func (d *MysqlDialect) GetForeignKeysQuery(schema, table string) (string, []any) {
	return `SELECT COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME FROM information_schema.KEY_COLUMN_USAGE WHERE TABLE_SCHEMA = COALESCE(NULLIF(?, ''), DATABASE()) AND TABLE_NAME = ? AND REFERENCED_TABLE_NAME IS NOT NULL ORDER BY CONSTRAINT_NAME, ORDINAL_POSITION`, []any{schema, table}
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}

func (d *MysqlDialect) IsExecutionError(err error) bool {
	return DefaultIsExecutionError(err)
}
