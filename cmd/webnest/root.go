package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/config"
	"github.com/mmynk/webnest/pkg/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "webnest",
	Short: "Web project cost and timeline estimator",
	Long: "WebNest prices web development projects from a catalog of project types, " +
		"features, team roles and add-ons, and submits finished plans to the project service.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ./webnest.toml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog TOML file (default: built-in catalog)")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	_ = viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd, catalogCmd, estimateCmd, submitCmd, tokenCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
