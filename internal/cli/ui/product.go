package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

var (
	// Tree node styles
	productStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)  // Cyan
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // Gray
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))            // Yellow
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true) // Pink

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// RenderProductTree renders the site's products as a tree grouped by site
func RenderProductTree(site string, products []*entity.DataProduct) string {
	if len(products) == 0 {
		return keyStyle.Render("No products found")
	}

	rootLabel := fmt.Sprintf("Site: %s", highlightStyle.Render(site))
	root := tree.Root(rootLabel)
	for _, product := range products {
		root.Child(buildProductNode(product))
	}

	return root.String()
}

// buildProductNode creates a tree node for a single product
func buildProductNode(product *entity.DataProduct) *tree.Tree {
	status := ""
	if product.Status != "" {
		status = keyStyle.Render(fmt.Sprintf(" (%s)", product.Status))
	}

	label := fmt.Sprintf("%s%s", productStyle.Render(product.Name), status)
	node := tree.New().Root(label)

	node.Child(renderField("id", product.ID))
	node.Child(renderField("source", product.Source))
	if product.Entity != "" {
		node.Child(renderField("entity", product.Entity))
	}
	if len(product.Protocols) > 0 {
		node.Child(renderField("protocols", strings.Join(product.Protocols, ", ")))
	}
	if len(product.Audiences) > 0 {
		node.Child(renderField("audiences", strings.Join(product.Audiences, ", ")))
	}
	if product.ApigeeProductID != "" {
		node.Child(renderField("gateway product", product.ApigeeProductID))
	}
	if product.MonetizationData != nil {
		node.Child(renderField("monetization", product.MonetizationData.DisplayName))
	}

	return node
}

func renderField(key, value string) string {
	return fmt.Sprintf("%s %s", keyStyle.Render(key+":"), valueStyle.Render(value))
}

// RenderProductSummary renders a count summary line
func RenderProductSummary(count int) string {
	return summaryStyle.Render(fmt.Sprintf("%d product(s)", count))
}

// RenderCategoryList renders the site's category list
func RenderCategoryList(site string, categories []string) string {
	if len(categories) == 0 {
		return keyStyle.Render("No categories found")
	}

	rootLabel := fmt.Sprintf("Site: %s", highlightStyle.Render(site))
	root := tree.Root(rootLabel)
	for _, category := range categories {
		root.Child(valueStyle.Render(category))
	}

	return root.String()
}
