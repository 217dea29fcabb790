package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// RenderAPIList renders the registered catalog APIs as a tree.
func RenderAPIList(apis []entity.CatalogAPI) string {
	root := tree.Root(productStyle.Render("Catalog APIs"))

	for _, api := range apis {
		node := tree.Root(highlightStyle.Render(api.DisplayName))
		node.Child(renderField("resource", shortAPIName(api.Name)))
		if api.Description != "" {
			node.Child(renderField("description", api.Description))
		}
		if api.Owner.DisplayName != "" {
			owner := api.Owner.DisplayName
			if api.Owner.Email != "" {
				owner = fmt.Sprintf("%s <%s>", owner, api.Owner.Email)
			}
			node.Child(renderField("owner", owner))
		}
		if api.Documentation.ExternalURI != "" {
			node.Child(renderField("docs", api.Documentation.ExternalURI))
		}
		root.Child(node)
	}

	return root.String()
}

// RenderAPISummary renders a summary line for the API listing.
func RenderAPISummary(count int) string {
	return summaryStyle.Render(fmt.Sprintf("%d API(s) registered", count))
}

// shortAPIName trims the projects/locations prefix from a full
// resource name so the listing stays readable.
func shortAPIName(name string) string {
	if idx := strings.LastIndex(name, "/apis/"); idx >= 0 {
		return name[idx+len("/apis/"):]
	}
	return name
}
