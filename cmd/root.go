package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	dsn        string
	driverName string
)

var RootCmd = &cobra.Command{
	Use:   "db-audit",
	Short: "Validate SQL query sets and describe database schemas",
	Long: `
  ____  ____       _   _   _ ____ ___ _____ 
 |  _ \| __ )     / \ | | | |  _ \_ _|_   _|
 | | | |  _ \    / _ \| | | | | | | |  | |  
 | |_| | |_) |  / ___ \ |_| | |_| | |  | |  
 |____/|____/  /_/   \_\___/|____/___| |_|  
                                            
DB AUDIT - SQL Query Validator & Schema Describer
`,
	SilenceUsage: true,
}

func Execute() {
	// Ctrl-C cancels the query in flight; remaining queries fail fast as unexpected errors.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-audit.yaml)")
	RootCmd.PersistentFlags().StringVar(&driverName, "driver", "", "database driver: sqlite, mysql, postgres, sqlserver, oracle")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN); overrides the SQLite path")

	bindRootConfig()
}

func bindRootConfig() {
	// Bind flags to viper
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	viper.SetDefault("database.driver", "sqlite")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-audit")
		viper.SetConfigType("yaml")
	}

	// DB_AUDIT_VALIDATE_OUTPUT_PATH -> validate.output_path
	viper.SetEnvPrefix("DB_AUDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
