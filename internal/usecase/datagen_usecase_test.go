package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// Mock CatalogClient

type attributeCreate struct {
	id          string
	displayName string
	values      []entity.CatalogAttribute
}

type testCatalogClient struct {
	created   []attributeCreate
	createErr error
}

func (c *testCatalogClient) GetAttribute(ctx context.Context, name string) ([]entity.CatalogAttribute, error) {
	return nil, nil
}

func (c *testCatalogClient) ListAPIs(ctx context.Context) ([]entity.CatalogAPI, error) {
	return nil, nil
}

func (c *testCatalogClient) CreateAttribute(ctx context.Context, id, displayName string, values []entity.CatalogAttribute) error {
	if c.createErr != nil {
		return c.createErr
	}
	c.created = append(c.created, attributeCreate{id, displayName, values})
	return nil
}

func TestDataGenRun(t *testing.T) {
	catalog := &testCatalogClient{}
	generator := &testGenerator{response: `["Retail", "Supply Chain", "Food & Drink"]`}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc := NewDataGenUsecase(catalog, generator, logger)

	err := uc.Run(context.Background(), &entity.DataGenJob{Topic: "retail", CategoryCount: 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// One attribute each for categories and sub-categories.
	if len(catalog.created) != 2 {
		t.Fatalf("attributes created = %d, want 2", len(catalog.created))
	}
	if catalog.created[0].id != "category" || catalog.created[0].displayName != "Category" {
		t.Errorf("first attribute = %+v", catalog.created[0])
	}
	if catalog.created[1].id != "subcategory" || catalog.created[1].displayName != "Sub Category" {
		t.Errorf("second attribute = %+v", catalog.created[1])
	}

	values := catalog.created[0].values
	if len(values) != 3 {
		t.Fatalf("attribute values = %d, want 3", len(values))
	}
	if values[1].ID != "supply_chain" || values[1].DisplayName != "Supply Chain" {
		t.Errorf("value = %+v", values[1])
	}
	if values[2].ID != "food_and_drink" {
		t.Errorf("ampersand not slugified: %+v", values[2])
	}

	// Both prompts carry the topic and count.
	if len(generator.prompts) != 2 {
		t.Fatalf("generator calls = %d, want 2", len(generator.prompts))
	}
	if !strings.Contains(generator.prompts[0], "3 one-word category names") ||
		!strings.Contains(generator.prompts[0], "topic retail") {
		t.Errorf("category prompt = %q", generator.prompts[0])
	}
	if !strings.Contains(generator.prompts[1], "sub-category names") {
		t.Errorf("sub-category prompt = %q", generator.prompts[1])
	}
}

func TestDataGenValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc := NewDataGenUsecase(&testCatalogClient{}, &testGenerator{}, logger)

	tests := []struct {
		name string
		job  *entity.DataGenJob
	}{
		{"nil job", nil},
		{"missing topic", &entity.DataGenJob{CategoryCount: 5}},
		{"zero count", &entity.DataGenJob{Topic: "retail"}},
		{"negative count", &entity.DataGenJob{Topic: "retail", CategoryCount: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := uc.Run(context.Background(), tt.job); !domain.IsInvalidInput(err) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestDataGenUnparseableResponse(t *testing.T) {
	catalog := &testCatalogClient{}
	generator := &testGenerator{response: "Here are some categories: retail, banking"}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc := NewDataGenUsecase(catalog, generator, logger)

	err := uc.Run(context.Background(), &entity.DataGenJob{Topic: "retail", CategoryCount: 3})
	if err == nil {
		t.Fatal("expected error for unparseable model response")
	}
	if len(catalog.created) != 0 {
		t.Errorf("no attributes must be created, got %d", len(catalog.created))
	}
}

func TestDataGenGeneratorFailure(t *testing.T) {
	generator := &testGenerator{err: errors.New("model unavailable")}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc := NewDataGenUsecase(&testCatalogClient{}, generator, logger)

	if err := uc.Run(context.Background(), &entity.DataGenJob{Topic: "retail", CategoryCount: 3}); err == nil {
		t.Fatal("expected error when generation fails")
	}
}

func TestSlugifyAttributeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Retail", "retail"},
		{"Supply Chain", "supply_chain"},
		{"Food & Drink", "food_and_drink"},
		{"Media (Digital)", "media_digital"},
	}

	for _, tt := range tests {
		if got := slugifyAttributeID(tt.in); got != tt.want {
			t.Errorf("slugifyAttributeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
