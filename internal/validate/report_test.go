package validate_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperr "db-audit/internal/errors"
	"db-audit/internal/validate"
)

func intPtr(n int) *int { return &n }

func TestWriteReport_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	s := &validate.Summary{Total: 1, Succeeded: 1}
	if err := validate.WriteReport(&buf, s, "ko"); err != nil {
		t.Fatal(err)
	}

	want := "--- SQL 쿼리 실행 통계 ---\n" +
		"총 쿼리 수: 1개\n" +
		"성공한 쿼리 수: 1개\n" +
		"실패한 쿼리 수: 0개\n" +
		"성공률: 100.00%\n"
	if buf.String() != want {
		t.Errorf("Unexpected report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteReport_FailureDetails(t *testing.T) {
	var buf bytes.Buffer
	s := &validate.Summary{
		Total:     3,
		Succeeded: 1,
		Failures: []validate.Outcome{
			{
				Index: 1, SQL: "SELECT * FROM Artist", Status: validate.RowCountMismatch,
				Expected: "275", Actual: intPtr(200),
				Err: apperr.New(apperr.ComparisonMismatch, "expected 275 rows, got 200"),
			},
			{
				Index: 3, SQL: "SELECT * FROM NoSuchTable", Status: validate.ExecutionError,
				Err: apperr.Wrap(apperr.ExecutionError, "query 3 failed", errors.New("no such table: NoSuchTable")),
			},
		},
	}
	if err := validate.WriteReport(&buf, s, "en"); err != nil {
		t.Fatal(err)
	}

	want := "--- SQL Query Execution Summary ---\n" +
		"Total queries: 3\n" +
		"Succeeded: 1\n" +
		"Failed: 2\n" +
		"Success rate: 33.33%\n" +
		"\n\n--- Failed SQL Query Details ---\n" +
		"\n[1] Failed query:\n" +
		"SELECT * FROM Artist\n" +
		"Reason: row count mismatch\n" +
		"  - Expected rows: 275\n" +
		"  - Actual rows: 200\n" +
		"\n[3] Failed query:\n" +
		"SELECT * FROM NoSuchTable\n" +
		"Reason: SQL execution error\n" +
		"  - Error message: no such table: NoSuchTable\n"
	if buf.String() != want {
		t.Errorf("Unexpected report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteReport_ZeroQueries(t *testing.T) {
	var buf bytes.Buffer
	if err := validate.WriteReport(&buf, &validate.Summary{}, "en"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Success rate: 0.00%")) {
		t.Errorf("Expected 0.00%% fallback, got:\n%s", buf.String())
	}
}

func TestLabelsFor_UnknownLanguage(t *testing.T) {
	if validate.LabelsFor("fr").Mismatch != "행 개수 불일치" {
		t.Error("Expected unknown languages to fall back to Korean labels")
	}
}

func TestSaveReport_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	if err := os.WriteFile(path, []byte("stale content that is much longer than the report"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := validate.SaveReport(path, &validate.Summary{Total: 1, Succeeded: 1}, "en"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("stale")) {
		t.Error("Expected the previous report to be replaced")
	}

	err = validate.SaveReport(filepath.Join(t.TempDir(), "missing", "results.txt"), &validate.Summary{}, "en")
	if !apperr.Is(err, apperr.OutputError) {
		t.Errorf("Expected OutputError, got %v", err)
	}
}
