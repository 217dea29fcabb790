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

var specSite string

// specCmd prints a product's stored OpenAPI spec
var specCmd = &cobra.Command{
	Use:   "spec <product-id>",
	Short: "Show a product's OpenAPI spec",
	Long: `Print the stored OpenAPI spec text of a product.

The spec is generated during product provisioning and stored alongside
the product document.`,
	Example: `  # Show the spec of a product
  $ mpctl spec customer-orders

  # Show the spec of a product in a specific site
  $ mpctl spec customer-orders --site partner-site`,
	Args: cobra.ExactArgs(1),
	RunE: runSpec,
}

func init() {
	specCmd.Flags().StringVar(&specSite, "site", "", "marketplace site id (default from config)")

	specCmd.SilenceUsage = true
}

func runSpec(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	site := specSite
	if site == "" {
		site = cfg.Site
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	spec, err := apiClient.GetSpec(ctx, site, args[0])
	if err != nil {
		ui.PrintError("failed to get spec: %v", err)
		return fmt.Errorf("spec retrieval failed")
	}

	if spec == "" {
		ui.PrintWarning("Product '%s' has no stored spec", args[0])
		return nil
	}

	fmt.Println(spec)
	return nil
}
