package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	apperr "db-audit/internal/errors"
	"db-audit/internal/validate"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCases_SkipsEntriesWithoutSQL(t *testing.T) {
	path := writeFile(t, "cases.json", `[
		{"sql": "SELECT * FROM Artist", "sql_result_rows_count": 275},
		{"question": "no sql here"},
		{"sql": "", "sql_result_rows_count": 1},
		{"sql": null},
		{"sql": "SELECT 1"}
	]`)

	cases, err := validate.LoadCases(path, validate.Keys{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 2 {
		t.Fatalf("Expected 2 cases, got %d", len(cases))
	}
	if cases[0].Index != 1 || cases[1].Index != 5 {
		t.Errorf("Expected indexes 1 and 5, got %d and %d", cases[0].Index, cases[1].Index)
	}
	if n, ok := cases[0].ExpectedCount(); !ok || n != 275 {
		t.Errorf("Expected 275, got %d (%v)", n, ok)
	}
	if _, ok := cases[1].ExpectedCount(); ok {
		t.Error("Absent expectation must not produce a count")
	}
	if cases[1].ExpectedText() != "None" {
		t.Errorf("Expected None, got %s", cases[1].ExpectedText())
	}
}

func TestLoadCases_CustomKeys(t *testing.T) {
	path := writeFile(t, "cases.json", `[{"query": "SELECT 1", "rows": 1}]`)
	cases, err := validate.LoadCases(path, validate.Keys{SQL: "query", Expected: "rows"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 1 || cases[0].SQL != "SELECT 1" {
		t.Fatalf("Unexpected cases: %+v", cases)
	}
	if n, ok := cases[0].ExpectedCount(); !ok || n != 1 {
		t.Errorf("Expected 1, got %d (%v)", n, ok)
	}
}

func TestLoadCases_Errors(t *testing.T) {
	cases := map[string]string{
		"invalid json":    `[{"sql": "SELECT 1"`,
		"not an array":    `{"sql": "SELECT 1"}`,
		"non-object item": `["SELECT 1"]`,
		"null item":       `[null]`,
	}
	for name, content := range cases {
		path := writeFile(t, "cases.json", content)
		_, err := validate.LoadCases(path, validate.Keys{})
		if !apperr.Is(err, apperr.ParseError) {
			t.Errorf("%s: expected ParseError, got %v", name, err)
		}
	}

	_, err := validate.LoadCases(filepath.Join(t.TempDir(), "missing.json"), validate.Keys{})
	if !apperr.Is(err, apperr.ParseError) {
		t.Errorf("missing file: expected ParseError, got %v", err)
	}
}

func TestExpectedCount_NoCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{`5`, 5, true},
		{`5.0`, 5, true},
		{`0`, 0, true},
		{`5.5`, 0, false},
		{`"5"`, 0, false},
		{`true`, 0, false},
		{`null`, 0, false},
		{``, 0, false},
	}
	for _, c := range cases {
		qc := validate.QueryCase{Expected: []byte(c.raw)}
		got, ok := qc.ExpectedCount()
		if ok != c.ok || got != c.want {
			t.Errorf("ExpectedCount(%q) = %d, %v; want %d, %v", c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestExpectedText(t *testing.T) {
	cases := map[string]string{
		`275`:  "275",
		`"5"`:  "5",
		`null`: "None",
		``:     "None",
		`5.0`:  "5.0",
	}
	for raw, want := range cases {
		qc := validate.QueryCase{Expected: []byte(raw)}
		if got := qc.ExpectedText(); got != want {
			t.Errorf("ExpectedText(%q) = %q, want %q", raw, got, want)
		}
	}
}
