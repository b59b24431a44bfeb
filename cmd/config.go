package cmd

import (
	"fmt"

	"db-audit/internal/store"

	"github.com/spf13/viper"
)

// GetActiveDBConfig returns the entry of the `databases` list marked active.
func GetActiveDBConfig() (*store.Config, error) {
	var configs []store.Config

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *store.Config
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// resolveStore picks the store a command talks to, in order:
//  1. --dsn / database.dsn (with --driver / database.driver)
//  2. the active entry of the `databases` list
//  3. the SQLite file at sqlitePath
func resolveStore(sqlitePath string) (store.Config, error) {
	if d := viper.GetString("database.dsn"); d != "" {
		return store.Config{Name: "CLI Wrapper", Driver: viper.GetString("database.driver"), DSN: d, Active: true}, nil
	}

	if viper.IsSet("databases") {
		active, err := GetActiveDBConfig()
		if err != nil {
			return store.Config{}, err
		}
		return *active, nil
	}

	return store.Config{Name: "sqlite", Driver: "sqlite", DSN: sqlitePath, Active: true}, nil
}

// ValidateConfig holds the validator's inputs and output.
type ValidateConfig struct {
	JSONPath    string
	DBPath      string
	OutputPath  string
	Language    string
	SQLKey      string
	ExpectedKey string
}

// Keys are read one by one so flags, env and defaults all apply
// (UnmarshalKey on a parent key only sees the config file).
func loadValidateConfig() ValidateConfig {
	return ValidateConfig{
		JSONPath:    viper.GetString("validate.json_path"),
		DBPath:      viper.GetString("validate.db_path"),
		OutputPath:  viper.GetString("validate.output_path"),
		Language:    viper.GetString("validate.language"),
		SQLKey:      viper.GetString("validate.sql_key"),
		ExpectedKey: viper.GetString("validate.expected_key"),
	}
}

// DescribeConfig holds the describer's inputs and output.
type DescribeConfig struct {
	DBRoot    string
	DBID      string
	DBPath    string
	OutputDir string
	Schema    string
	Strict    bool
	Humanize  bool
}

func loadDescribeConfig() DescribeConfig {
	return DescribeConfig{
		DBRoot:    viper.GetString("describe.db_root"),
		DBID:      viper.GetString("describe.db_id"),
		DBPath:    viper.GetString("describe.db_path"),
		OutputDir: viper.GetString("describe.output_dir"),
		Schema:    viper.GetString("describe.schema"),
		Strict:    viper.GetBool("describe.strict"),
		Humanize:  viper.GetBool("describe.humanize"),
	}
}
