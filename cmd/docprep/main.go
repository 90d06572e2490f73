// Command docprep prepares a markdown documentation corpus for a
// Docusaurus site: it migrates loose files into the documentation
// tree, previews that migration, and fixes MDX compilation issues.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prompt-insights/docprep-cli/internal/adapters/driven/config/file"
	"github.com/prompt-insights/docprep-cli/internal/adapters/driven/storage/fs"
	"github.com/prompt-insights/docprep-cli/internal/adapters/driving/cli"
	"github.com/prompt-insights/docprep-cli/internal/classifier"
	"github.com/prompt-insights/docprep-cli/internal/core/services"
	"github.com/prompt-insights/docprep-cli/internal/fixes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetServiceBuilder(buildServices)

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the adapters into the core services. It runs
// after flag parsing so an explicit --config path is honoured.
func buildServices(configPath string) error {
	cfg, err := file.NewConfigStore(configPath)
	if err != nil {
		return err
	}

	docs := fs.NewDocumentStore()
	cls := classifier.New(cfg.GetStringSlice("migrate.companies")...)
	pipeline := fixes.NewDefault(cfg.GetStringSlice("fix.tags")...)

	fixer := services.NewFixService(docs, pipeline)

	cli.SetServices(cli.Services{
		Migrator: services.NewMigrationService(docs, cls),
		Analyzer: services.NewAnalysisService(docs, cls),
		Fixer:    fixer,
		Watcher:  services.NewWatchService(fixer, fs.NewWatcher()),
		Config:   cfg,
	})
	return nil
}
