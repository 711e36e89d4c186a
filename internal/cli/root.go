// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austenstone/project-update/internal/config"
)

var (
	// Global flags
	configPath   string
	tokenFlag    string
	endpointFlag string

	// Loaded config
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "project-update",
	Short: "Update fields on GitHub Projects (beta) items",
	Long: `project-update resolves field names and values against a project
board's schema and applies typed updates to a single item.

Field names match the board's schema case-insensitively. Values for
single-select and iteration fields match option names or iteration titles
case-insensitively, or select by position with "[<n>]" ("[0]" is always
the current iteration). Text, number, and date fields take the value
verbatim.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the API or config
		switch cmd.Name() {
		case "help", "version", "completion":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.LoadFrom(config.ResolveConfigPath(configPath))
		if err != nil {
			err = fmt.Errorf("failed to load config: %w", err)
			if isJSONOutput() {
				// Emit the envelope on stdout; the returned error
				// still stops the run and goes to stderr.
				outputJSON(Response{
					OK: false,
					Error: &ErrorInfo{
						Code:       ErrConfigInvalid,
						Message:    err.Error(),
						Suggestion: "Fix the config file or pass --config with a valid path",
					},
				})
			}
			return err
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "GitHub token (overrides GITHUB_TOKEN and config)")
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "GraphQL endpoint (for GitHub Enterprise)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}
