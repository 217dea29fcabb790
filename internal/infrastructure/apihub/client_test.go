package apihub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

func TestGetAttribute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/v1/projects/my-project/locations/europe-west1/attributes/system-team"
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		w.Write([]byte(`{
			"name": "projects/my-project/locations/europe-west1/attributes/system-team",
			"displayName": "Team",
			"allowedValues": [
				{"id": "platform", "displayName": "Platform"},
				{"id": "data", "displayName": "Data"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))

	values, err := client.GetAttribute(context.Background(), "system-team")
	if err != nil {
		t.Fatalf("GetAttribute failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("values = %d, want 2", len(values))
	}
	if values[0].ID != "platform" || values[1].DisplayName != "Data" {
		t.Errorf("values = %+v", values)
	}
}

func TestGetAttributeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 404}}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))

	if _, err := client.GetAttribute(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestListAPIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/v1/projects/my-project/locations/europe-west1/apis"
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		w.Write([]byte(`{
			"apis": [
				{"name": "projects/my-project/locations/europe-west1/apis/orders", "displayName": "Orders"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))

	apis, err := client.ListAPIs(context.Background())
	if err != nil {
		t.Fatalf("ListAPIs failed: %v", err)
	}
	if len(apis) != 1 || apis[0].DisplayName != "Orders" {
		t.Errorf("apis = %+v", apis)
	}
}

func TestCreateAttribute(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("attributeId"); got != "category" {
			t.Errorf("attributeId = %q, want category", got)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))

	values := []entity.CatalogAttribute{{ID: "retail", DisplayName: "Retail", Description: "Retail"}}
	if err := client.CreateAttribute(context.Background(), "category", "Category", values); err != nil {
		t.Fatalf("CreateAttribute failed: %v", err)
	}

	if captured["scope"] != "API" {
		t.Errorf("scope = %v, want API", captured["scope"])
	}
	if captured["dataType"] != "ENUM" {
		t.Errorf("dataType = %v, want ENUM", captured["dataType"])
	}
	if captured["cardinality"] != float64(1) {
		t.Errorf("cardinality = %v, want 1", captured["cardinality"])
	}
	if captured["description"] != "The category of the API." {
		t.Errorf("description = %v", captured["description"])
	}
}

func TestLoadAttributeSetDegradesOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only the team attribute exists; every other load fails.
		if r.URL.Path == "/v1/projects/my-project/locations/europe-west1/attributes/system-team" {
			w.Write([]byte(`{"allowedValues": [{"id": "platform", "displayName": "Platform"}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))

	set := LoadAttributeSet(context.Background(), client)
	if len(set.Teams) != 1 {
		t.Errorf("teams = %d, want 1", len(set.Teams))
	}
	if len(set.Regions) != 0 || len(set.TargetUsers) != 0 {
		t.Error("failed loads must leave their lists empty")
	}

	counts := set.Counts()
	if counts[entity.AttrTeam] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRegistrarSequence(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))
	attrs := &AttributeSet{
		TargetUsers: []entity.CatalogAttribute{{ID: "team", DisplayName: "Team"}, {ID: "public", DisplayName: "Public"}},
		Teams:       []entity.CatalogAttribute{{ID: "platform", DisplayName: "Platform"}},
	}
	registrar := NewRegistrar(client, attrs, "https://marketplace.example.com", "api.example.com")

	product := &entity.DataProduct{
		ID:           "orders",
		Name:         "Orders",
		Site:         "default",
		Entity:       "orders",
		SpecContents: `{"openapi": "3.0.0"}`,
	}

	ctx := context.Background()
	if err := registrar.RegisterAPI(ctx, product); err != nil {
		t.Fatalf("RegisterAPI failed: %v", err)
	}
	if err := registrar.CreateDeployment(ctx, product); err != nil {
		t.Fatalf("CreateDeployment failed: %v", err)
	}
	if err := registrar.CreateVersion(ctx, product); err != nil {
		t.Fatalf("CreateVersion failed: %v", err)
	}
	if err := registrar.CreateVersionSpec(ctx, product); err != nil {
		t.Fatalf("CreateVersionSpec failed: %v", err)
	}

	parent := "/v1/projects/my-project/locations/europe-west1"
	want := []string{
		parent + "/apis",
		parent + "/deployments",
		parent + "/apis/orders/versions",
		parent + "/apis/orders/versions/orders/specs",
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("call %d = %q, want %q", i, paths[i], p)
		}
	}
}

func TestRegistrarOmitsEmptyAssignments(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "my-project", "europe-west1", WithBaseURL(server.URL))
	registrar := NewRegistrar(client, &AttributeSet{}, "https://marketplace.example.com", "api.example.com")

	product := &entity.DataProduct{ID: "orders", Name: "Orders", Site: "default"}
	if err := registrar.RegisterAPI(context.Background(), product); err != nil {
		t.Fatalf("RegisterAPI failed: %v", err)
	}

	// Empty attribute lists must not produce assignments.
	for _, key := range []string{"targetUser", "team", "businessUnit", "maturityLevel", "attributes"} {
		if _, ok := captured[key]; ok {
			t.Errorf("empty snapshot produced assignment %q", key)
		}
	}
	// The API style is fixed, not snapshot dependent.
	if _, ok := captured["apiStyle"]; !ok {
		t.Error("apiStyle assignment missing")
	}
}
