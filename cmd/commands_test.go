package cmd

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	apperr "db-audit/internal/errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resetConfig clears viper and every flag value left over from an earlier
// command run, then restores the bindings made at init.
func resetConfig(t *testing.T) {
	t.Helper()
	reset := func() {
		for _, c := range []*cobra.Command{RootCmd, validateCmd, describeCmd} {
			for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
				fs.VisitAll(func(f *pflag.Flag) {
					f.Value.Set(f.DefValue)
					f.Changed = false
				})
			}
		}
		viper.Reset()
		bindRootConfig()
		bindValidateConfig()
		bindDescribeConfig()
	}
	reset()
	t.Cleanup(reset)
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	RootCmd.SetArgs(args)
	return RootCmd.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newArtistFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE Artist (ArtistId INTEGER PRIMARY KEY, Name TEXT);
INSERT INTO Artist (Name) VALUES ('AC/DC'), ('Accept');`); err != nil {
		t.Fatal(err)
	}
}

func assertAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected %s not to exist (stat err: %v)", path, err)
	}
}

func TestValidate_WritesReport(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "cases.json")
	dbPath := filepath.Join(dir, "chinook.sqlite")
	out := filepath.Join(dir, "results.txt")
	writeFile(t, input, `[{"sql": "SELECT * FROM Artist", "sql_result_rows_count": 2}]`)
	newArtistFile(t, dbPath)

	if err := run(t, "validate", "--input", input, "--db", dbPath, "--output", out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected a report: %v", err)
	}
}

func TestValidate_TopLevelFailuresWriteNoReport(t *testing.T) {
	tests := []struct {
		name  string
		input string // file content; "" leaves the file missing
		db    bool
		kind  apperr.Kind
	}{
		{"missing input", "", true, apperr.ParseError},
		{"invalid json", `[{"sql": `, true, apperr.ParseError},
		{"not an array", `{"sql": "SELECT 1"}`, true, apperr.ParseError},
		{"missing database", `[{"sql": "SELECT * FROM Artist", "sql_result_rows_count": 2}]`, false, apperr.ConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConfig(t)
			dir := t.TempDir()
			input := filepath.Join(dir, "cases.json")
			dbPath := filepath.Join(dir, "chinook.sqlite")
			out := filepath.Join(dir, "results.txt")
			if tt.input != "" {
				writeFile(t, input, tt.input)
			}
			if tt.db {
				newArtistFile(t, dbPath)
			}

			err := run(t, "validate", "--input", input, "--db", dbPath, "--output", out)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !apperr.Is(err, tt.kind) {
				t.Errorf("Expected %s, got %v", tt.kind, err)
			}
			assertAbsent(t, out)
			if !tt.db {
				assertAbsent(t, dbPath)
			}
		})
	}
}

func TestDescribe_MissingDatabaseLeavesOutputAlone(t *testing.T) {
	resetConfig(t)
	root := t.TempDir()
	stale := filepath.Join(root, "chinook", "database_description", "album.csv")
	writeFile(t, stale, "original_column_name\n")

	if err := run(t, "describe", "--db-root", root, "--db-id", "chinook"); err == nil {
		t.Fatal("Expected an error for a missing database file")
	}
	if _, err := os.Stat(stale); err != nil {
		t.Errorf("Expected the existing description to be kept: %v", err)
	}
}

func TestDescribe_MissingDatabaseCreatesNoDirectory(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()

	if err := run(t, "describe", "--db", filepath.Join(dir, "nope.sqlite")); err == nil {
		t.Fatal("Expected an error for a missing database file")
	}
	assertAbsent(t, filepath.Join(dir, "database_description"))
}

func TestDescribe_WritesDescriptions(t *testing.T) {
	resetConfig(t)
	root := t.TempDir()
	newArtistFile(t, filepath.Join(root, "chinook", "chinook.sqlite"))

	if err := run(t, "describe", "--db-root", root, "--db-id", "chinook"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "chinook", "database_description", "artist.csv")); err != nil {
		t.Errorf("Expected artist.csv: %v", err)
	}
}
