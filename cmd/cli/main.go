package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/budget-atlas/pkg/runtime/terminal"
	"github.com/de-tools/budget-atlas/pkg/services/config"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	profilesPath := ".budgetcfg"
	if home, err := os.UserHomeDir(); err == nil {
		profilesPath = filepath.Join(home, ".budgetcfg")
	}

	cfg, err := config.LoadConfig(os.Getenv("BUDGET_CONFIG"), profilesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Connect: cfg.Connect,
		Output:  os.Stdout,
		Plain:   os.Getenv("BUDGET_PLAIN") == "true",
	})

	if err := cli.ExecuteContext(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
