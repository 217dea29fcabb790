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

// apisCmd lists the registered catalog APIs
var apisCmd = &cobra.Command{
	Use:   "apis",
	Short: "List APIs registered in the catalog",
	Long: `List the APIs registered in the API catalog.

Every published product is registered in the catalog alongside its
deployment and version metadata.`,
	Example: `  $ mpctl apis`,
	RunE:    runListAPIs,
}

func init() {
	apisCmd.SilenceUsage = true
}

func runListAPIs(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	apis, err := apiClient.ListAPIs(ctx)
	if err != nil {
		ui.PrintError("failed to list APIs: %v", err)
		return fmt.Errorf("list failed")
	}

	if len(apis) == 0 {
		ui.PrintInfo("No APIs registered in the catalog")
		return nil
	}

	fmt.Println()
	fmt.Println(ui.RenderAPIList(apis))
	fmt.Println(ui.RenderAPISummary(len(apis)))
	return nil
}
