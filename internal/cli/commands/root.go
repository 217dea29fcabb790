package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamadfayez/apigee-marketplace/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "mpctl",
	Short:   "Apigee data marketplace CLI",
	Version: version,
	Long: `A command-line tool for managing data products in the Apigee marketplace.
Provides product provisioning, category management, catalog browsing, and
taxonomy generation against a marketplace API server.`,
	Example: `  # Point the CLI at an API server
  $ mpctl config set -s http://localhost:8080 -e admin@example.com

  # List products visible to the configured user
  $ mpctl list

  # Create a product interactively
  $ mpctl create

  # Create a product from a YAML file
  $ mpctl create -f product.yaml

  # Get help on a specific command
  $ mpctl list --help`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(specCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(datagenCmd)
	rootCmd.AddCommand(apisCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("mpctl version %s\n", version)
}
