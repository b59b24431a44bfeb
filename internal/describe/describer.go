// Package describe writes one CSV per table describing its columns, primary
// keys and foreign keys.
package describe

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"db-audit/internal/dialect"
	apperr "db-audit/internal/errors"
	"db-audit/internal/schema"
)

// ColumnDescriptor is one row of a table's description file.
type ColumnDescriptor struct {
	OriginalName     string
	DisplayName      string
	Description      string
	DataFormat       string
	ValueDescription string
}

func (c ColumnDescriptor) record() []string {
	return []string{c.OriginalName, c.DisplayName, c.Description, c.DataFormat, c.ValueDescription}
}

// Options controls a describer run.
type Options struct {
	OutputDir string
	Schema    string

	// Strict aborts the whole run on the first table that fails. When false,
	// the failure is recorded and the remaining tables are still described.
	Strict bool

	// Humanize derives display names from the column identifiers instead of
	// repeating the original name.
	Humanize bool
}

// TableFailure records a table that could not be described.
type TableFailure struct {
	Table string
	Err   error
}

// Result lists the files written and, in lenient mode, the tables skipped.
type Result struct {
	Written  []string
	Failures []TableFailure
}

type Describer struct {
	DB      *sql.DB
	Dialect dialect.Dialect
	Opts    Options
}

// Run describes every base table. The output directory must already be
// prepared (see PrepareOutputDir).
func (d *Describer) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	tables, err := schema.ListTables(ctx, d.DB, d.Dialect, d.Opts.Schema)
	if err != nil {
		return res, apperr.Wrap(apperr.ExecutionError, "cannot list tables", err)
	}
	log.Printf("Found tables: %v", tables)

	for _, name := range tables {
		log.Printf("Processing table: %s", name)

		path, err := d.describeTable(ctx, name)
		if err != nil {
			if d.Opts.Strict {
				return res, err
			}
			log.Printf("Warning: skipping table %s: %v", name, err)
			res.Failures = append(res.Failures, TableFailure{Table: name, Err: err})
			continue
		}

		res.Written = append(res.Written, path)
		log.Printf("Successfully generated %s", path)
	}
	return res, nil
}

func (d *Describer) describeTable(ctx context.Context, name string) (string, error) {
	t, err := schema.InspectTable(ctx, d.DB, d.Dialect, d.Opts.Schema, name)
	if err != nil {
		return "", apperr.Wrap(apperr.ExecutionError, fmt.Sprintf("cannot inspect table %s", name), err)
	}

	path := filepath.Join(d.Opts.OutputDir, strings.ToLower(name)+".csv")
	if err := writeCSV(path, Describe(t, d.Opts.Humanize)); err != nil {
		return "", apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot write %s", path), err)
	}
	return path, nil
}

// Describe builds the descriptor rows of a table in column order.
func Describe(t *schema.Table, humanize bool) []ColumnDescriptor {
	// 컬럼 -> FK 설명 (같은 컬럼에 FK가 여러 개면 마지막 것이 남는다)
	fkText := make(map[string]string)
	for _, fk := range t.ForeignKeys {
		fkText[fk.Column] = fmt.Sprintf("Foreign key referencing '%s' table on column '%s'.", fk.RefTable, fk.RefColumn)
	}

	cols := make([]ColumnDescriptor, 0, len(t.Columns))
	for _, c := range t.Columns {
		var desc string
		if c.IsPK {
			desc = "Primary key."
		}
		if s, ok := fkText[c.Name]; ok {
			desc += " " + s
		}

		display := c.Name
		if humanize {
			display = schema.HumanizeName(c.Name)
		}

		cols = append(cols, ColumnDescriptor{
			OriginalName: c.Name,
			DisplayName:  display,
			Description:  strings.TrimSpace(desc),
			DataFormat:   c.DataType,
		})
	}
	return cols
}
