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

var categoriesSite string

// categoriesCmd is the parent categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage site categories",
	Long: `Manage the product categories of a marketplace site.

Categories are stored in the site configuration document and shown as
storefront filters.`,
	Example: `  # List categories of the configured site
  $ mpctl categories list

  # Add a category
  $ mpctl categories add "Sales & Marketing"

  # Remove a category
  $ mpctl categories remove "Sales & Marketing"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// categoriesListCmd lists the site's categories
var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoriesList,
}

// categoriesAddCmd adds a category
var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

// categoriesRemoveCmd removes a category
var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRemove,
}

func init() {
	categoriesCmd.PersistentFlags().StringVar(&categoriesSite, "site", "", "marketplace site id (default from config)")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)

	categoriesCmd.SilenceUsage = true
	categoriesListCmd.SilenceUsage = true
	categoriesAddCmd.SilenceUsage = true
	categoriesRemoveCmd.SilenceUsage = true
}

func categoriesClient() (*client.APIClient, string, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, "", fmt.Errorf("config load failed")
	}

	site := categoriesSite
	if site == "" {
		site = cfg.Site
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, "", fmt.Errorf("client creation failed")
	}

	return apiClient, site, nil
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, site, err := categoriesClient()
	if err != nil {
		return err
	}

	siteConfig, err := apiClient.ListCategories(ctx, site)
	if err != nil {
		ui.PrintError("failed to list categories: %v", err)
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderCategoryList(site, siteConfig.Categories))
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, site, err := categoriesClient()
	if err != nil {
		return err
	}

	siteConfig, err := apiClient.AddCategory(ctx, site, args[0])
	if err != nil {
		ui.PrintError("failed to add category: %v", err)
		return fmt.Errorf("add operation failed")
	}

	ui.PrintSuccess("Category '%s' added", args[0])
	fmt.Println()
	fmt.Println(ui.RenderCategoryList(site, siteConfig.Categories))
	return nil
}

func runCategoriesRemove(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, site, err := categoriesClient()
	if err != nil {
		return err
	}

	if err := apiClient.RemoveCategory(ctx, site, args[0]); err != nil {
		ui.PrintError("failed to remove category: %v", err)
		return fmt.Errorf("remove operation failed")
	}

	ui.PrintSuccess("Category '%s' removed", args[0])
	return nil
}
