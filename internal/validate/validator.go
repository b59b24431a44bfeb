package validate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"db-audit/internal/dialect"
	apperr "db-audit/internal/errors"
)

// Status is the result kind of a single query. Kinds are mutually exclusive.
type Status int

const (
	Success Status = iota
	RowCountMismatch
	ExecutionError
	UnexpectedError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case RowCountMismatch:
		return "row_count_mismatch"
	case ExecutionError:
		return "execution_error"
	case UnexpectedError:
		return "unexpected_error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the result of running one QueryCase.
type Outcome struct {
	Index  int
	SQL    string // trimmed
	Status Status

	Expected string // rendered expectation, set for mismatches
	Actual   *int   // set whenever the rows were counted

	// Err carries the failure kind and the store's error text verbatim.
	Err *apperr.E
}

// Message returns the error text recorded for execution and unexpected errors.
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Detail()
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total     int
	Succeeded int
	Failures  []Outcome // in input order
}

// Failed returns the number of failed queries.
func (s *Summary) Failed() int { return len(s.Failures) }

// SuccessRate returns the success percentage. A run without queries reports 0.
func (s *Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total) * 100
}

// Validator executes query cases one after another on a single connection.
type Validator struct {
	DB      *sql.DB
	Dialect dialect.Dialect

	// OnProgress, if set, is called once per attempted query.
	OnProgress func()
}

// Run executes every case in order. A failing query never stops the loop;
// its failure is recorded on the summary instead.
func (v *Validator) Run(ctx context.Context, cases []QueryCase) *Summary {
	s := &Summary{}
	for _, qc := range cases {
		s.Total++
		o := v.runOne(ctx, qc)
		if o.Status == Success {
			s.Succeeded++
		} else {
			s.Failures = append(s.Failures, o)
		}
		if v.OnProgress != nil {
			v.OnProgress()
		}
	}
	return s
}

func (v *Validator) runOne(ctx context.Context, qc QueryCase) (o Outcome) {
	o = Outcome{Index: qc.Index, SQL: strings.TrimSpace(qc.SQL)}

	defer func() {
		if r := recover(); r != nil {
			o.Status = UnexpectedError
			o.Actual = nil
			o.Err = apperr.New(apperr.UnexpectedError, fmt.Sprint(r))
		}
	}()

	if qc.invalidSQL != nil {
		o.SQL = string(qc.invalidSQL)
		o.Status = UnexpectedError
		o.Err = apperr.New(apperr.UnexpectedError, fmt.Sprintf("sql must be a string, got %s", qc.invalidSQL))
		return o
	}

	// Nothing runs when the text holds a second statement.
	if hasTrailingStatement(qc.SQL) {
		o.Status = UnexpectedError
		o.Err = apperr.New(apperr.UnexpectedError, "You can only execute one statement at a time.")
		return o
	}

	actual, err := v.countRows(ctx, qc.SQL)
	if err != nil {
		if v.Dialect.IsExecutionError(err) {
			o.Status = ExecutionError
			o.Err = apperr.Wrap(apperr.ExecutionError, fmt.Sprintf("query %d failed", qc.Index), err)
		} else {
			o.Status = UnexpectedError
			o.Err = apperr.Wrap(apperr.UnexpectedError, fmt.Sprintf("query %d failed", qc.Index), err)
		}
		return o
	}

	o.Actual = &actual
	if expected, ok := qc.ExpectedCount(); ok && expected == int64(actual) {
		o.Status = Success
		return o
	}

	o.Status = RowCountMismatch
	o.Expected = qc.ExpectedText()
	o.Err = apperr.New(apperr.ComparisonMismatch, fmt.Sprintf("expected %s rows, got %d", o.Expected, actual))
	return o
}

// countRows runs the query and consumes every row. No transaction is opened:
// a data-modifying statement takes effect immediately.
func (v *Validator) countRows(ctx context.Context, query string) (int, error) {
	rows, err := v.DB.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
