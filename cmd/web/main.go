package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/budget-atlas/pkg/server"
	"github.com/de-tools/budget-atlas/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Budget Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".budgetcfg"
	}
	return filepath.Join(home, ".budgetcfg")
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath, defaultProfilesPath())
	if err != nil {
		return err
	}

	logger, err := cfg.Log.Logger(os.Stdout)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	services, closeFn, err := cfg.Connect(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to open datasource: %w", err)
	}
	defer func() {
		if err := closeFn(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to close datasource")
		}
	}()

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Services: services,
			PageSize: cfg.API.DefaultPageSize,
			Logger:   logger,
		},
	})

	return webAPI.Start()
}
