// Package validate runs a batch of SQL queries against a store and checks
// each one's row count against the expectation recorded next to it.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	apperr "db-audit/internal/errors"
)

// Default JSON field names of a query case.
const (
	DefaultSQLKey      = "sql"
	DefaultExpectedKey = "sql_result_rows_count"
)

// Keys names the JSON fields read from every input object.
type Keys struct {
	SQL      string
	Expected string
}

func (k Keys) withDefaults() Keys {
	if k.SQL == "" {
		k.SQL = DefaultSQLKey
	}
	if k.Expected == "" {
		k.Expected = DefaultExpectedKey
	}
	return k
}

// QueryCase is one entry of the input list.
type QueryCase struct {
	// Index is the 1-based position in the input array. Skipped entries keep
	// their slot, so indexes may have gaps.
	Index int
	SQL   string
	// Expected is the raw JSON expectation; nil when the key is absent.
	Expected json.RawMessage

	// invalidSQL holds a present, non-empty SQL value that is not a string.
	invalidSQL json.RawMessage
}

// ExpectedCount returns the expectation as an integer when it is a JSON
// number with an integral value. Strings, booleans, null and absent keys
// report false.
func (c QueryCase) ExpectedCount() (int64, bool) {
	raw := bytes.TrimSpace(c.Expected)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, false
	}
	r, ok := new(big.Rat).SetString(string(raw))
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// ExpectedText renders the expectation for the report. An absent or null
// expectation renders as "None"; strings render without quotes.
func (c QueryCase) ExpectedText() string {
	raw := bytes.TrimSpace(c.Expected)
	if len(raw) == 0 || string(raw) == "null" {
		return "None"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// LoadCases reads the JSON file at path. The document must be an array of
// objects; entries whose SQL field is missing, null or an empty string are
// skipped.
func LoadCases(path string, keys Keys) ([]QueryCase, error) {
	keys = keys.withDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ParseError, fmt.Sprintf("cannot read %s", path), err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperr.Wrap(apperr.ParseError, fmt.Sprintf("%s is not a valid JSON array", path), err)
	}

	var cases []QueryCase
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			if err == nil {
				err = fmt.Errorf("got null")
			}
			return nil, apperr.Wrap(apperr.ParseError, fmt.Sprintf("item %d in %s is not an object", i+1, path), err)
		}

		qc := QueryCase{Index: i + 1, Expected: fields[keys.Expected]}

		rawSQL := bytes.TrimSpace(fields[keys.SQL])
		if isEmptyValue(rawSQL) {
			continue
		}
		if err := json.Unmarshal(rawSQL, &qc.SQL); err != nil {
			qc.invalidSQL = rawSQL
		}
		cases = append(cases, qc)
	}
	return cases, nil
}

// isEmptyValue mirrors the falsy check on the SQL field: missing, null, "",
// false, 0 and empty containers all mean "no query".
func isEmptyValue(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", `""`, "false", "0", "[]", "{}":
		return true
	}
	return false
}
