package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/mohamadfayez/apigee-marketplace/internal/cli/client"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/config"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/loader"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/ui"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

var (
	createSite string
	createFile string
)

// createCmd is the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a data product",
	Long: `Create a marketplace data product.

Provisioning creates the gateway product and configuration entries for
the product's source type, optionally a monetization rate plan, persists
the product document, and registers the product in the API catalog.

You can create a product in two ways:
  1. Interactive mode (will prompt for all required fields)
  2. From a YAML file using -f`,
	Example: `  # Interactive creation
  $ mpctl create

  # Create from a YAML file
  $ mpctl create -f product.yaml

  # Create in a specific site
  $ mpctl create --site partner-site -f product.yaml`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createSite, "site", "", "marketplace site id (default from config)")
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "YAML file containing the product definition")

	// Silence usage to avoid showing help on every error
	createCmd.SilenceUsage = true
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	site := createSite
	if site == "" {
		site = cfg.Site
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	if createFile != "" {
		return createFromFile(ctx, apiClient, createFile, site)
	}

	return createInteractive(ctx, apiClient, site)
}

// createFromFile creates a product from a YAML file
func createFromFile(ctx context.Context, apiClient *client.APIClient, filepath, site string) error {
	ui.PrintInfo("Loading product from file: %s", filepath)

	file, err := loader.LoadFromFile(filepath)
	if err != nil {
		ui.PrintError("failed to load file: %v", err)
		return fmt.Errorf("file load failed")
	}

	product, err := file.ToEntity()
	if err != nil {
		ui.PrintError("invalid product specification: %v", err)
		return fmt.Errorf("validation failed")
	}

	ui.PrintSuccess("File loaded successfully")
	printProductSummary(site, product)

	if !confirmCreation() {
		ui.PrintInfo("Cancelled")
		return nil
	}

	return submitProduct(ctx, apiClient, site, product)
}

// createInteractive guides the user through product creation
func createInteractive(ctx context.Context, apiClient *client.APIClient, site string) error {
	ui.PrintInfo("Creating data product (Interactive Mode)")
	fmt.Println()

	product := &entity.DataProduct{}

	idPrompt := &survey.Input{
		Message: "Product id:",
		Help:    "lowercase letters, numbers and hyphens only; used for gateway and catalog resource names",
	}
	if err := survey.AskOne(idPrompt, &product.ID, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input cancelled")
	}

	namePrompt := &survey.Input{
		Message: "Product name:",
	}
	if err := survey.AskOne(namePrompt, &product.Name, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input cancelled")
	}

	descPrompt := &survey.Input{
		Message: "Description (optional):",
	}
	if err := survey.AskOne(descPrompt, &product.Description); err != nil {
		return fmt.Errorf("input cancelled")
	}

	sourcePrompt := &survey.Select{
		Message: "Data source type:",
		Options: []string{
			entity.SourceBigQuery,
			entity.SourceBigQueryTable,
			entity.SourceAPI,
			entity.SourceAIModel,
			entity.SourceGenAITest,
		},
		Default: entity.SourceBigQueryTable,
	}
	if err := survey.AskOne(sourcePrompt, &product.Source); err != nil {
		return fmt.Errorf("selection cancelled")
	}

	entityPrompt := &survey.Input{
		Message: "Entity name:",
		Help:    "logical data-object name, used in gateway paths and config-map keys",
	}
	if err := survey.AskOne(entityPrompt, &product.Entity, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input cancelled")
	}

	queryHelp := "table reference or SQL for BigQuery sources, model name for AI sources"
	queryPrompt := &survey.Input{
		Message: "Query:",
		Help:    queryHelp,
	}
	if err := survey.AskOne(queryPrompt, &product.Query); err != nil {
		return fmt.Errorf("input cancelled")
	}

	if product.Source == entity.SourceAIModel {
		systemPrompt := &survey.Input{
			Message: "System prompt:",
			Help:    "system prompt injected ahead of model calls",
		}
		if err := survey.AskOne(systemPrompt, &product.QueryAdditionalInfo); err != nil {
			return fmt.Errorf("input cancelled")
		}
	}

	protocolsPrompt := &survey.MultiSelect{
		Message: "Protocols (space to select, enter to confirm):",
		Options: []string{
			entity.ProtocolAPI,
			entity.ProtocolAnalyticsHub,
			entity.ProtocolEvent,
			entity.ProtocolDataSync,
		},
		Default: []string{entity.ProtocolAPI},
	}
	if err := survey.AskOne(protocolsPrompt, &product.Protocols); err != nil {
		return fmt.Errorf("selection cancelled")
	}

	audiencesPrompt := &survey.MultiSelect{
		Message: "Audiences (space to select, enter to confirm):",
		Options: []string{
			entity.AudienceInternal,
			entity.AudiencePartner,
			entity.AudienceExternal,
		},
		Default: []string{entity.AudienceInternal},
	}
	if err := survey.AskOne(audiencesPrompt, &product.Audiences); err != nil {
		return fmt.Errorf("selection cancelled")
	}

	if len(product.Audiences) == 0 {
		ui.PrintError("At least one audience must be selected")
		return fmt.Errorf("no audience selected")
	}

	printProductSummary(site, product)

	if !confirmCreation() {
		ui.PrintInfo("Cancelled")
		return nil
	}

	return submitProduct(ctx, apiClient, site, product)
}

// printProductSummary displays the product before creation
func printProductSummary(site string, product *entity.DataProduct) {
	ui.PrintInfo("About to create product:")
	fmt.Printf("  Id: %s\n", product.ID)
	fmt.Printf("  Name: %s\n", product.Name)
	fmt.Printf("  Site: %s\n", site)
	fmt.Printf("  Source: %s\n", product.Source)
	fmt.Printf("  Entity: %s\n", product.Entity)
	if len(product.Protocols) > 0 {
		fmt.Printf("  Protocols: %s\n", strings.Join(product.Protocols, ", "))
	}
	if len(product.Audiences) > 0 {
		fmt.Printf("  Audiences: %s\n", strings.Join(product.Audiences, ", "))
	}
	fmt.Println()
}

// confirmCreation asks the user to confirm
func confirmCreation() bool {
	confirm := false
	confirmPrompt := &survey.Confirm{
		Message: "Confirm creation?",
		Default: true,
	}
	if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
		return false
	}
	return confirm
}

// submitProduct sends the create request and reports the result
func submitProduct(ctx context.Context, apiClient *client.APIClient, site string, product *entity.DataProduct) error {
	ui.PrintInfo("Creating...")

	created, err := apiClient.CreateProduct(ctx, site, product)
	if err != nil {
		ui.PrintError("Failed to create: %v", err)
		return fmt.Errorf("creation failed")
	}

	ui.PrintSuccess("Product '%s' created successfully!", created.Name)
	fmt.Println()
	if created.ApigeeProductID != "" {
		fmt.Printf("Gateway product: %s\n", created.ApigeeProductID)
	}
	if created.SpecURL != "" {
		fmt.Printf("Spec: %s\n", created.SpecURL)
	}
	fmt.Printf("View products: mpctl list --site %s\n", site)

	return nil
}
