package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohamadfayez/apigee-marketplace/internal/cli/client"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/config"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/ui"
)

var (
	listSite  string
	listEmail string
)

// listCmd is the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List data products",
	Long: `List the marketplace data products visible to a user.

Products are filtered by audience: a product is shown when one of its
audiences matches one of the user's roles. The site and email default to
the values stored in the CLI configuration.`,
	Example: `  # List products for the configured site and user
  $ mpctl list

  # List products of a specific site
  $ mpctl list --site partner-site

  # List products visible to another user
  $ mpctl list -e partner@example.com`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSite, "site", "", "marketplace site id (default from config)")
	listCmd.Flags().StringVarP(&listEmail, "email", "e", "", "user email (default from config)")

	// Silence usage to avoid showing help on every error
	listCmd.SilenceUsage = true
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	site := listSite
	if site == "" {
		site = cfg.Site
	}
	email := listEmail
	if email == "" {
		email = cfg.Email
	}
	if email == "" {
		ui.PrintError("no user email configured")
		fmt.Println("\nRun 'mpctl config set -e you@example.com' or pass --email.")
		return fmt.Errorf("email required")
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Fetching products from site '%s'...", site)

	products, err := apiClient.ListProducts(ctx, site, email)
	if err != nil {
		ui.PrintError("failed to list products: %v", err)
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderProductTree(site, products))
	fmt.Println(ui.RenderProductSummary(len(products)))

	return nil
}
