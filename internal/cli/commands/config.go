package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamadfayez/apigee-marketplace/internal/cli/config"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/ui"
)

var (
	configServer string
	configSite   string
	configEmail  string
)

// configCmd is the parent config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage the CLI configuration stored in ~/.mpctl/config.json.

The configuration holds the API server address, the marketplace site,
and the user email used for product listing.`,
	Example: `  # Point the CLI at an API server
  $ mpctl config set -s http://localhost:8080

  # Set site and user email
  $ mpctl config set --site partner-site -e partner@example.com

  # Show current configuration
  $ mpctl config view`,
}

// configSetCmd updates configuration values
var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE:  runConfigSet,
}

// configViewCmd prints the current configuration
var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show current configuration",
	RunE:  runConfigView,
}

func init() {
	configSetCmd.Flags().StringVarP(&configServer, "server", "s", "", "API server address")
	configSetCmd.Flags().StringVar(&configSite, "site", "", "marketplace site id")
	configSetCmd.Flags().StringVarP(&configEmail, "email", "e", "", "user email for product listing")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configViewCmd)

	configCmd.SilenceUsage = true
	configSetCmd.SilenceUsage = true
	configViewCmd.SilenceUsage = true
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	changed := false
	if configServer != "" {
		cfg.Server = configServer
		changed = true
	}
	if configSite != "" {
		cfg.Site = configSite
		changed = true
	}
	if configEmail != "" {
		cfg.Email = configEmail
		changed = true
	}

	if !changed {
		ui.PrintWarning("nothing to set, use --server, --site or --email")
		return nil
	}

	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("Configuration saved")
	return nil
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	ui.PrintBold("Current configuration:")
	fmt.Printf("  Server: %s\n", cfg.Server)
	fmt.Printf("  Site:   %s\n", cfg.Site)
	fmt.Printf("  Email:  %s\n", cfg.Email)
	return nil
}
