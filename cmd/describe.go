package cmd

import (
	"fmt"
	"log"
	"os"

	"db-audit/internal/describe"
	"db-audit/internal/dialect"
	"db-audit/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var lenient bool

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Write one CSV per table describing its columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadDescribeConfig()
		if lenient {
			cfg.Strict = false
		}
		ctx := cmd.Context()

		sqlitePath := cfg.DBPath
		if sqlitePath == "" {
			sqlitePath = describe.ResolveDatabasePath(cfg.DBRoot, cfg.DBID)
		}

		storeCfg, err := resolveStore(sqlitePath)
		if err != nil {
			return err
		}

		outDir := cfg.OutputDir
		if storeCfg.IsSQLite() {
			path := store.SQLitePath(storeCfg.DSN)
			log.Printf("Attempting to generate descriptions for: %s", path)
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("database file does not exist: %s", path)
			}
			if outDir == "" {
				outDir = describe.OutputDirFor(path)
			}
		} else if outDir == "" {
			outDir = describe.DirName
		}

		if err := describe.PrepareOutputDir(outDir); err != nil {
			return err
		}

		db, err := store.Open(ctx, storeCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		d := &describe.Describer{
			DB:      db,
			Dialect: dialect.GetDialect(storeCfg.Driver),
			Opts: describe.Options{
				OutputDir: outDir,
				Schema:    cfg.Schema,
				Strict:    cfg.Strict,
				Humanize:  cfg.Humanize,
			},
		}
		res, err := d.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\n📄 Described %d tables into %s\n", len(res.Written), outDir)
		if len(res.Failures) > 0 {
			for _, f := range res.Failures {
				fmt.Printf("    └ %s: %v\n", f.Table, f.Err)
			}
			return fmt.Errorf("%d table(s) could not be described", len(res.Failures))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(describeCmd)

	// CLI Flags
	describeCmd.Flags().String("db-root", "", "root directory of the databases (env DB_ROOT_DIRECTORY)")
	describeCmd.Flags().String("db-id", "", "database identifier: selects <db-root>/<id>/<id>.sqlite")
	describeCmd.Flags().String("db", "", "explicit SQLite database file (overrides --db-root/--db-id)")
	describeCmd.Flags().String("out", "", "output directory (default: database_description next to the database)")
	describeCmd.Flags().String("schema", "", "schema to describe on server databases")
	describeCmd.Flags().Bool("humanize", false, "derive readable column_name values from the identifiers")
	describeCmd.Flags().BoolVar(&lenient, "lenient", false, "skip tables that fail instead of aborting the run")

	bindDescribeConfig()
}

func bindDescribeConfig() {
	viper.BindPFlag("describe.db_root", describeCmd.Flags().Lookup("db-root"))
	viper.BindPFlag("describe.db_id", describeCmd.Flags().Lookup("db-id"))
	viper.BindPFlag("describe.db_path", describeCmd.Flags().Lookup("db"))
	viper.BindPFlag("describe.output_dir", describeCmd.Flags().Lookup("out"))
	viper.BindPFlag("describe.schema", describeCmd.Flags().Lookup("schema"))
	viper.BindPFlag("describe.humanize", describeCmd.Flags().Lookup("humanize"))
	viper.BindEnv("describe.db_root", "DB_ROOT_DIRECTORY")

	viper.SetDefault("describe.db_root", "./data/dev/dev_databases")
	viper.SetDefault("describe.db_id", "chinook")
	viper.SetDefault("describe.strict", true)
}
