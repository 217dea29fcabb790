package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// ProductFile represents a product definition loaded from a YAML file
type ProductFile struct {
	// Kind must be "DataProduct"
	Kind string `yaml:"kind"`
	// Spec contains the product definition
	Spec ProductSpec `yaml:"spec"`
}

// ProductSpec mirrors the product document in YAML form
type ProductSpec struct {
	ID                  string   `yaml:"id"`
	Site                string   `yaml:"site,omitempty"`
	Name                string   `yaml:"name"`
	DisplayName         string   `yaml:"displayName,omitempty"`
	Description         string   `yaml:"description,omitempty"`
	Status              string   `yaml:"status,omitempty"`
	Entity              string   `yaml:"entity,omitempty"`
	Source              string   `yaml:"source"`
	Protocols           []string `yaml:"protocols,omitempty"`
	Audiences           []string `yaml:"audiences,omitempty"`
	Categories          []string `yaml:"categories,omitempty"`
	Query               string   `yaml:"query,omitempty"`
	QueryAdditionalInfo string   `yaml:"queryAdditionalInfo,omitempty"`
	SamplePayload       string   `yaml:"samplePayload,omitempty"`
	SpecPrompt          string   `yaml:"specPrompt,omitempty"`
	OwnerName           string   `yaml:"ownerName,omitempty"`
	OwnerEmail          string   `yaml:"ownerEmail,omitempty"`
}

// LoadFromFile loads a product definition from a YAML file.
func LoadFromFile(filepath string) (*ProductFile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var product ProductFile
	if err := yaml.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if product.Kind == "" {
		return nil, fmt.Errorf("'kind' field is required")
	}
	if product.Kind != "DataProduct" {
		return nil, fmt.Errorf("invalid kind '%s', must be 'DataProduct'", product.Kind)
	}

	return &product, nil
}

// ToEntity converts the loaded file to a product entity
func (p *ProductFile) ToEntity() (*entity.DataProduct, error) {
	if p.Spec.ID == "" {
		return nil, fmt.Errorf("spec.id is required")
	}
	if p.Spec.Name == "" {
		return nil, fmt.Errorf("spec.name is required")
	}
	if p.Spec.Source == "" {
		return nil, fmt.Errorf("spec.source is required")
	}

	return &entity.DataProduct{
		ID:                  p.Spec.ID,
		Site:                p.Spec.Site,
		Name:                p.Spec.Name,
		DisplayName:         p.Spec.DisplayName,
		Description:         p.Spec.Description,
		Status:              p.Spec.Status,
		Entity:              p.Spec.Entity,
		Source:              p.Spec.Source,
		Protocols:           p.Spec.Protocols,
		Audiences:           p.Spec.Audiences,
		Categories:          p.Spec.Categories,
		Query:               p.Spec.Query,
		QueryAdditionalInfo: p.Spec.QueryAdditionalInfo,
		SamplePayload:       p.Spec.SamplePayload,
		SpecPrompt:          p.Spec.SpecPrompt,
		OwnerName:           p.Spec.OwnerName,
		OwnerEmail:          p.Spec.OwnerEmail,
	}, nil
}
