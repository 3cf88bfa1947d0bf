package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/planpilothq/planpilot/internal/assistant"
	"github.com/planpilothq/planpilot/internal/cli"
	"github.com/planpilothq/planpilot/internal/db"
	"github.com/planpilothq/planpilot/internal/repository"
	"github.com/planpilothq/planpilot/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.planpilot/planpilot.db
	dbPath := os.Getenv("PLANPILOT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".planpilot", "planpilot.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)

	cfg := assistant.LoadConfig()
	var observer assistant.Observer = assistant.NoopObserver{}
	if cfg.LogCalls {
		observer = assistant.NewLogObserver(os.Stderr)
	}
	client := assistant.NewClient(cfg, observer)
	var estimates assistant.EstimateClient
	if cfg.EstimateEndpoint != "" {
		estimates = assistant.NewEstimateClient(cfg, observer)
	}

	app := &cli.App{
		Plans:  service.NewPlanService(planRepo),
		Chat:   service.NewChatService(planRepo, client, estimates, os.Stderr),
		Emails: service.NewEmailService(planRepo, os.Stderr),
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
