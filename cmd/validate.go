package cmd

import (
	"fmt"
	"log"
	"time"

	"db-audit/internal/dialect"
	"db-audit/internal/store"
	"db-audit/internal/validate"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run every query of a JSON file and check its row count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadValidateConfig()
		ctx := cmd.Context()

		// 1. Load cases (nothing runs if the input is unusable)
		cases, err := validate.LoadCases(cfg.JSONPath, validate.Keys{SQL: cfg.SQLKey, Expected: cfg.ExpectedKey})
		if err != nil {
			return fmt.Errorf("오류: %w", err)
		}
		log.Printf("Loaded %d queries from %s", len(cases), cfg.JSONPath)

		// 2. Connect
		storeCfg, err := resolveStore(cfg.DBPath)
		if err != nil {
			return err
		}
		db, err := store.Open(ctx, storeCfg)
		if err != nil {
			return fmt.Errorf("데이터베이스 연결 오류: %w", err)
		}
		log.Printf("Connected to %s (%s)", storeCfg.Name, storeCfg.Driver)

		// 3. Execute
		v := &validate.Validator{DB: db, Dialect: dialect.GetDialect(storeCfg.Driver)}
		start := time.Now()

		if len(cases) > 0 {
			uiprogress.Start()
			bar := uiprogress.AddBar(len(cases)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Validating: "
			})
			v.OnProgress = func() { bar.Incr() }
		}

		summary := v.Run(ctx, cases)

		if len(cases) > 0 {
			uiprogress.Stop()
		}
		db.Close()

		// 4. Report
		if err := validate.SaveReport(cfg.OutputPath, summary, cfg.Language); err != nil {
			return err
		}

		log.Printf("Validation Done! %d/%d succeeded (%.2f%%), Time Elapsed: %s",
			summary.Succeeded, summary.Total, summary.SuccessRate(), time.Since(start))
		fmt.Printf("쿼리 실행 결과가 '%s' 파일에 저장되었습니다.\n", cfg.OutputPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	// CLI Flags
	validateCmd.Flags().String("input", "", "JSON file with query/expected row count pairs")
	validateCmd.Flags().String("db", "", "SQLite database file to run the queries against")
	validateCmd.Flags().String("output", "", "report file to write")
	validateCmd.Flags().String("lang", "", "report language (ko, en)")

	bindValidateConfig()
}

func bindValidateConfig() {
	viper.BindPFlag("validate.json_path", validateCmd.Flags().Lookup("input"))
	viper.BindPFlag("validate.db_path", validateCmd.Flags().Lookup("db"))
	viper.BindPFlag("validate.output_path", validateCmd.Flags().Lookup("output"))
	viper.BindPFlag("validate.language", validateCmd.Flags().Lookup("lang"))

	viper.SetDefault("validate.json_path", "question_and_sql_pairs.json")
	viper.SetDefault("validate.db_path", "./data/dev/dev_databases/chinook/chinook.sqlite")
	viper.SetDefault("validate.output_path", "results.txt")
	viper.SetDefault("validate.language", validate.DefaultLanguage)
	viper.SetDefault("validate.sql_key", validate.DefaultSQLKey)
	viper.SetDefault("validate.expected_key", validate.DefaultExpectedKey)
}
