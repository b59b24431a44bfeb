package schema

import (
	"context"
	"database/sql"
	"db-audit/internal/dialect"
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------
// 1. Table Listing
// ---------------------------------------------------------------------

// ListTables returns base table names in catalog order.
func ListTables(ctx context.Context, db *sql.DB, d dialect.Dialect, schemaName string) ([]string, error) {
	query, args := d.GetTablesQuery(d.GetSchemaName(schemaName))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return tables, nil
}

// ---------------------------------------------------------------------
// 2. Per-Table Inspection
// ---------------------------------------------------------------------

// InspectTable reads the ordered column list and the foreign keys of one table.
func InspectTable(ctx context.Context, db *sql.DB, d dialect.Dialect, schemaName, table string) (*Table, error) {
	target := d.GetSchemaName(schemaName)

	columns, err := fetchColumns(ctx, db, d, target, table)
	if err != nil {
		return nil, err
	}
	t := &Table{Name: table, Columns: columns}

	fks, err := fetchForeignKeys(ctx, db, d, target, table)
	if err != nil {
		return nil, err
	}

	// SQLite leaves "to" empty when the reference points at the parent's
	// implicit primary key. Resolve it so the description names a column.
	pkCache := make(map[string][]string)
	for _, fk := range fks {
		if fk.RefColumn != "" {
			continue
		}
		key := strings.ToUpper(fk.RefTable)
		pks, ok := pkCache[key]
		if !ok {
			if strings.EqualFold(fk.RefTable, table) {
				pks = t.PrimaryKeys()
			} else {
				refCols, err := fetchColumns(ctx, db, d, target, fk.RefTable)
				if err != nil {
					return nil, err
				}
				pks = (&Table{Columns: refCols}).PrimaryKeys()
			}
			pkCache[key] = pks
		}
		if len(pks) == 0 {
			fk.RefColumn = "None" // parent table missing or without a primary key
			continue
		}
		fk.RefColumn = strings.Join(pks, ", ")
	}
	t.ForeignKeys = fks

	return t, nil
}

func fetchColumns(ctx context.Context, db *sql.DB, d dialect.Dialect, target, table string) ([]*Column, error) {
	query, args := d.GetColumnsQuery(target, table)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns (table: %s): %w", table, err)
	}
	defer rows.Close()

	var columns []*Column
	for rows.Next() {
		var (
			pos            sql.NullInt64
			name, dataType sql.NullString
			notNull, pk    sql.NullInt64
			dflt           sql.NullString
		)
		if err := rows.Scan(&pos, &name, &dataType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", table, err)
		}
		if !name.Valid {
			continue // Skip invalid rows
		}

		columns = append(columns, &Column{
			Position: int(pos.Int64),
			Name:     name.String,
			DataType: dataType.String,
			NotNull:  notNull.Int64 != 0,
			Default:  dflt.String,
			IsPK:     pk.Int64 != 0, // SQLite reports the 1-based position inside the key
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns (table: %s): %w", table, err)
	}
	return columns, nil
}

func fetchForeignKeys(ctx context.Context, db *sql.DB, d dialect.Dialect, target, table string) ([]*ForeignKey, error) {
	query, args := d.GetForeignKeysQuery(target, table)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys (table: %s): %w", table, err)
	}
	defer rows.Close()

	var fks []*ForeignKey
	for rows.Next() {
		var cName, rTable, rCol sql.NullString
		if err := rows.Scan(&cName, &rTable, &rCol); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key (table: %s): %w", table, err)
		}
		if !cName.Valid || !rTable.Valid {
			continue
		}
		fks = append(fks, &ForeignKey{
			Column:    cName.String,
			RefTable:  rTable.String,
			RefColumn: rCol.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys (table: %s): %w", table, err)
	}
	return fks, nil
}
