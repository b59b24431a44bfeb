package describe

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	apperr "db-audit/internal/errors"
)

// DirName is the directory created next to the database file.
const DirName = "database_description"

// ResolveDatabasePath returns <root>/<id>/<id>.sqlite, or the .db variant
// when the .sqlite file does not exist.
func ResolveDatabasePath(root, id string) string {
	path := filepath.Join(root, id, id+".sqlite")
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(root, id, id+".db")
	}
	return path
}

// OutputDirFor returns the description directory that belongs to dbPath.
func OutputDirFor(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), DirName)
}

// PrepareOutputDir creates dir when missing. When it exists, previously
// generated CSV files at its top level are removed; other files and
// subdirectories are left alone.
func PrepareOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot create %s", dir), err)
		}
		log.Printf("Created directory: %s", dir)
		return nil
	}
	if err != nil {
		return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot access %s", dir), err)
	}
	if !info.IsDir() {
		return apperr.New(apperr.OutputError, fmt.Sprintf("%s is not a directory", dir))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot list %s", dir), err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot remove %s", e.Name()), err)
		}
	}
	log.Printf("Cleared existing files in %s", dir)
	return nil
}
