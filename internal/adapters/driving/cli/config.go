package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// sliceKeys are the config keys stored as string slices; set splits
// their value on commas.
var sliceKeys = map[string]bool{
	"migrate.companies": true,
	"fix.tags":          true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docprep configuration",
	Long: `View and change the configuration file backing migrate and fix.

Recognized keys:
  migrate.docs       documentation tree root
  migrate.companies  extra big-tech company names (comma-separated)
  fix.tags           extra reserved tag names (comma-separated)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n", configStore.Path())
	cmd.Println()

	cmd.Println("[migrate]")
	cmd.Printf("  docs: %s\n", orNotSet(configStore.GetString("migrate.docs")))
	cmd.Printf("  companies: %s\n", orNotSet(strings.Join(configStore.GetStringSlice("migrate.companies"), ", ")))
	cmd.Println()

	cmd.Println("[fix]")
	cmd.Printf("  tags: %s\n", orNotSet(strings.Join(configStore.GetStringSlice("fix.tags"), ", ")))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	if sliceKeys[key] {
		if values := configStore.GetStringSlice(key); len(values) > 0 {
			cmd.Println(strings.Join(values, ", "))
			return nil
		}
		return fmt.Errorf("%s is not set", key)
	}

	value, ok := configStore.Get(key)
	if !ok {
		return fmt.Errorf("%s is not set", key)
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	var value any = raw
	if sliceKeys[key] {
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		value = values
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

// orNotSet renders empty values in the show listing.
func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
