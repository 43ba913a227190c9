package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/lmercer/shiftdoc/internal/cli"
	"github.com/lmercer/shiftdoc/internal/db"
	"github.com/lmercer/shiftdoc/internal/repository"
	"github.com/lmercer/shiftdoc/internal/service"
	"github.com/lmercer/shiftdoc/internal/statement"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.shiftdoc/shiftdoc.db
	dbPath := os.Getenv("SHIFTDOC_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shiftdoc", "shiftdoc.db")
	}

	// Determine statement template directory
	templateDir := os.Getenv("SHIFTDOC_TEMPLATES")
	if templateDir == "" {
		if stat, err := os.Stat("./templates"); err == nil && stat.IsDir() {
			templateDir = "./templates"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			templateDir = filepath.Join(home, ".shiftdoc", "templates")
		}
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	associateRepo := repository.NewSQLiteAssociateRepo(database)
	incidentRepo := repository.NewSQLiteIncidentRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	renderer := &statement.Renderer{TemplateDir: templateDir}

	app := &cli.App{
		Incidents:  service.NewIncidentService(incidentRepo, associateRepo, settingsRepo),
		Associates: service.NewAssociateService(associateRepo),
		Settings:   service.NewSettingsService(settingsRepo),
		Statements: service.NewStatementService(incidentRepo, associateRepo, settingsRepo, renderer),
		Network:    service.NewNetworkService(incidentRepo, associateRepo),
		Config:     service.NewConfigService(associateRepo, settingsRepo, uow),
	}

	// Detect interactive terminal for form and browser entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
