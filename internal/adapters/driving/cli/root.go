package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driving"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

// Service implementations the commands run against, injected by the
// wiring layer before Execute.
var (
	migrationService driving.Migrator
	analysisService  driving.Analyzer
	fixService       driving.Fixer
	watchService     driving.Watcher
	configStore      driven.ConfigStore
)

// serviceBuilder rebuilds the services once persistent flags are
// parsed, so an explicit --config path takes effect before a command
// runs. Tests inject services directly and leave it unset.
var serviceBuilder func(configPath string) error

var (
	verboseFlag bool
	cfgFile     string
)

var rootCmd = &cobra.Command{
	Use:   "docprep",
	Short: "Prepare a prompt documentation corpus for publishing",
	Long: `docprep prepares a markdown documentation corpus for a Docusaurus
site: it migrates loose files into the documentation tree, previews
that migration, and fixes MDX compilation issues in place.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if serviceBuilder != nil {
			return serviceBuilder(cfgFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.docprep/config.toml)")
}

// Services bundles the implementations the commands depend on.
type Services struct {
	Migrator driving.Migrator
	Analyzer driving.Analyzer
	Fixer    driving.Fixer
	Watcher  driving.Watcher
	Config   driven.ConfigStore
}

// SetServices installs the service implementations used by the commands.
func SetServices(s Services) {
	migrationService = s.Migrator
	analysisService = s.Analyzer
	fixService = s.Fixer
	watchService = s.Watcher
	configStore = s.Config
}

// SetServiceBuilder installs the builder invoked after flag parsing.
func SetServiceBuilder(build func(configPath string) error) {
	serviceBuilder = build
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
