package dialect

type OracleDialect struct{}

// Oracle queries read the USER_* views, so the schema only needs to be bound.
// We include a dummy clause to consume the schema argument if passed by standard callers.

func (d *OracleDialect) GetTablesQuery(schema string) (string, []any) {
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL`, []any{schema}
}

func (d *OracleDialect) GetColumnsQuery(schema, table string) (string, []any) {
	return `
SELECT
    t.COLUMN_ID,
    t.COLUMN_NAME,
    t.DATA_TYPE || CASE WHEN t.DATA_TYPE IN ('VARCHAR2', 'NVARCHAR2', 'CHAR', 'NCHAR') THEN '(' || t.CHAR_LENGTH || ')' ELSE '' END,
    CASE WHEN t.NULLABLE = 'N' THEN 1 ELSE 0 END,
    t.DATA_DEFAULT,
    CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 1 ELSE 0 END
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON t.TABLE_NAME = p.TABLE_NAME AND t.COLUMN_NAME = p.COLUMN_NAME
WHERE :1 IS NOT NULL AND t.TABLE_NAME = :2
ORDER BY t.COLUMN_ID`, []any{schema, table}
}

func (d *OracleDialect) GetForeignKeysQuery(schema, table string) (string, []any) {
	return `
SELECT
    cc.COLUMN_NAME,
    r.TABLE_NAME AS REF_TABLE,
    rcc.COLUMN_NAME AS REF_COLUMN
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc
    ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
    AND c.OWNER = cc.OWNER
JOIN USER_CONSTRAINTS r
    ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME
    AND c.R_OWNER = r.OWNER
JOIN USER_CONS_COLUMNS rcc
    ON r.CONSTRAINT_NAME = rcc.CONSTRAINT_NAME
    AND r.OWNER = rcc.OWNER
    AND cc.POSITION = rcc.POSITION
WHERE c.CONSTRAINT_TYPE = 'R'
AND :1 IS NOT NULL AND c.TABLE_NAME = :2
ORDER BY c.CONSTRAINT_NAME, cc.POSITION`, []any{schema, table}
}

func (d *OracleDialect) GetSchemaName(input string) string {
	// Oracle treats '' as NULL, which would empty every query above.
	if input == "" {
		return "USER"
	}
	return input
}

func (d *OracleDialect) IsExecutionError(err error) bool {
	return DefaultIsExecutionError(err)
}
