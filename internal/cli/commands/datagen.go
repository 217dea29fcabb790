package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/mohamadfayez/apigee-marketplace/internal/cli/client"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/config"
	"github.com/mohamadfayez/apigee-marketplace/internal/cli/ui"
)

var (
	datagenTopic string
	datagenCount int
)

// datagenCmd triggers taxonomy generation
var datagenCmd = &cobra.Command{
	Use:   "datagen",
	Short: "Generate catalog taxonomy for a topic",
	Long: `Generate category and sub-category names for a topic and register
them as catalog attributes.

The server asks the generative model for the names and creates the
"category" and "subcategory" ENUM attributes in the API catalog.`,
	Example: `  # Interactive mode (prompts for topic and count)
  $ mpctl datagen

  # Non-interactive
  $ mpctl datagen --topic retail --count 10`,
	RunE: runDataGen,
}

func init() {
	datagenCmd.Flags().StringVar(&datagenTopic, "topic", "", "topic to generate categories for")
	datagenCmd.Flags().IntVar(&datagenCount, "count", 0, "number of categories to generate")

	datagenCmd.SilenceUsage = true
}

func runDataGen(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
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

	topic := datagenTopic
	count := datagenCount

	if topic == "" {
		topicPrompt := &survey.Input{
			Message: "Topic:",
			Help:    "marketplace domain to generate categories for, e.g. retail or healthcare",
		}
		if err := survey.AskOne(topicPrompt, &topic, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("input cancelled")
		}
	}

	if count <= 0 {
		var countInput string
		countPrompt := &survey.Input{
			Message: "Number of categories (default: 10):",
			Default: "10",
		}
		if err := survey.AskOne(countPrompt, &countInput); err != nil {
			return fmt.Errorf("input cancelled")
		}
		count, err = strconv.Atoi(countInput)
		if err != nil || count <= 0 {
			ui.PrintError("invalid count: %s", countInput)
			return fmt.Errorf("invalid count")
		}
	}

	ui.PrintInfo("Generating %d categories for topic '%s'...", count, topic)

	if err := apiClient.RunDataGen(ctx, topic, count); err != nil {
		ui.PrintError("taxonomy generation failed: %v", err)
		return fmt.Errorf("generation failed")
	}

	ui.PrintSuccess("Taxonomy generated for topic '%s'", topic)
	fmt.Println()
	fmt.Println("View catalog attributes through the API Hub console.")
	return nil
}
