package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// Mock ProductRepository

type testProductRepository struct {
	saved   map[string]*entity.DataProduct
	saveErr error
}

func newTestProductRepository() *testProductRepository {
	return &testProductRepository{saved: make(map[string]*entity.DataProduct)}
}

func (r *testProductRepository) Save(ctx context.Context, site string, product *entity.DataProduct) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[site+"/"+product.ID] = product
	return nil
}

func (r *testProductRepository) Get(ctx context.Context, site, id string) (*entity.DataProduct, error) {
	if p, ok := r.saved[site+"/"+id]; ok {
		return p, nil
	}
	return nil, domain.NewNotFoundError("Product", id)
}

func (r *testProductRepository) List(ctx context.Context, site string) ([]*entity.DataProduct, error) {
	products := make([]*entity.DataProduct, 0, len(r.saved))
	for key, p := range r.saved {
		if strings.HasPrefix(key, site+"/") {
			products = append(products, p)
		}
	}
	return products, nil
}

// Mock UserRepository

type testUserRepository struct {
	users map[string]*entity.User
}

func (r *testUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domain.NewNotFoundError("User", email)
}

// Mock GatewayClient

type kvmWrite struct {
	mapName string
	key     string
	value   string
}

type productCreate struct {
	name        string
	displayName string
	path        string
	proxyName   string
}

type ratePlanCreate struct {
	productID string
	plan      *entity.MonetizationRatePlan
}

type testGatewayClient struct {
	kvmWrites   []kvmWrite
	products    []productCreate
	ratePlans   []ratePlanCreate
	kvmErr      error
	productErr  error
	ratePlanErr error
}

func (g *testGatewayClient) SetKVMEntry(ctx context.Context, mapName, key, value string) error {
	if g.kvmErr != nil {
		return g.kvmErr
	}
	g.kvmWrites = append(g.kvmWrites, kvmWrite{mapName, key, value})
	return nil
}

func (g *testGatewayClient) CreateAPIProduct(ctx context.Context, name, displayName, path, proxyName string) error {
	if g.productErr != nil {
		return g.productErr
	}
	g.products = append(g.products, productCreate{name, displayName, path, proxyName})
	return nil
}

func (g *testGatewayClient) CreateRatePlan(ctx context.Context, productID string, plan *entity.MonetizationRatePlan) error {
	if g.ratePlanErr != nil {
		return g.ratePlanErr
	}
	g.ratePlans = append(g.ratePlans, ratePlanCreate{productID, plan})
	return nil
}

// Mock CatalogRegistrar

type testRegistrar struct {
	calls    []string
	failStep string
}

func (r *testRegistrar) step(name string) error {
	if r.failStep == name {
		return fmt.Errorf("%s failed", name)
	}
	r.calls = append(r.calls, name)
	return nil
}

func (r *testRegistrar) RegisterAPI(ctx context.Context, p *entity.DataProduct) error {
	return r.step("register")
}

func (r *testRegistrar) CreateDeployment(ctx context.Context, p *entity.DataProduct) error {
	return r.step("deployment")
}

func (r *testRegistrar) CreateVersion(ctx context.Context, p *entity.DataProduct) error {
	return r.step("version")
}

func (r *testRegistrar) CreateVersionSpec(ctx context.Context, p *entity.DataProduct) error {
	return r.step("spec")
}

// Mock SpecGenerator

type testGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *testGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

// Mock SampleDataClient

type testSampleClient struct {
	sample   string
	fetchErr error
	fetches  []string
	exports  []string
}

func (c *testSampleClient) FetchSample(ctx context.Context, callPath, entity string) (string, error) {
	c.fetches = append(c.fetches, callPath+"/"+entity)
	if c.fetchErr != nil {
		return "", c.fetchErr
	}
	return c.sample, nil
}

func (c *testSampleClient) TriggerExport(ctx context.Context, entity string) error {
	c.exports = append(c.exports, entity)
	return nil
}

type testDeps struct {
	products  *testProductRepository
	users     *testUserRepository
	gateway   *testGatewayClient
	registrar *testRegistrar
	generator *testGenerator
	samples   *testSampleClient
}

func newTestUsecase(t *testing.T) (*productUsecase, *testDeps) {
	t.Helper()

	deps := &testDeps{
		products:  newTestProductRepository(),
		users:     &testUserRepository{users: make(map[string]*entity.User)},
		gateway:   &testGatewayClient{},
		registrar: &testRegistrar{},
		generator: &testGenerator{response: `{"openapi": "3.0.0"}`},
		samples:   &testSampleClient{sample: `{"id": 1}`},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc := NewProductUsecase(
		deps.products, deps.users, deps.gateway, deps.registrar,
		deps.generator, deps.samples, "api.example.com", logger,
	).(*productUsecase)

	// Run the fire-and-forget calls inline so assertions see them.
	uc.runAsync = func(fn func()) { fn() }

	return uc, deps
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.DataProduct
	}{
		{"missing id", &entity.DataProduct{Name: "Orders", Source: entity.SourceAPI}},
		{"missing name", &entity.DataProduct{ID: "orders", Source: entity.SourceAPI}},
		{"missing source", &entity.DataProduct{ID: "orders", Name: "Orders"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUsecase(t)

			_, err := uc.Create(context.Background(), "default", tt.product)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !domain.IsInvalidInput(err) {
				t.Errorf("expected invalid input error, got %v", err)
			}
			if len(deps.products.saved) != 0 {
				t.Error("invalid product must not be persisted")
			}
		})
	}
}

func TestCreateBigQueryProduct(t *testing.T) {
	uc, deps := newTestUsecase(t)

	product := &entity.DataProduct{
		ID:        "orders",
		Name:      "Orders",
		Source:    entity.SourceBigQuery,
		Entity:    "orders",
		Query:     "select * from orders",
		Protocols: []string{entity.ProtocolAPI},
	}

	result, err := uc.Create(context.Background(), "default", product)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if result.Site != "default" {
		t.Errorf("site = %q, want default", result.Site)
	}
	if result.ApigeeProductID != "marketplace_orders" {
		t.Errorf("apigeeProductId = %q, want marketplace_orders", result.ApigeeProductID)
	}
	if result.SpecURL != "/api/products/orders/spec?site=default" {
		t.Errorf("specUrl = %q", result.SpecURL)
	}

	// The query lands in the gateway config map under the entity key.
	if len(deps.gateway.kvmWrites) != 1 {
		t.Fatalf("kvm writes = %d, want 1", len(deps.gateway.kvmWrites))
	}
	kvm := deps.gateway.kvmWrites[0]
	if kvm.mapName != "marketplace-kvm" || kvm.key != "orders" || kvm.value != "select * from orders" {
		t.Errorf("kvm write = %+v", kvm)
	}

	// BigQuery sources bind to the data proxy at the entity path.
	if len(deps.gateway.products) != 1 {
		t.Fatalf("gateway products = %d, want 1", len(deps.gateway.products))
	}
	gw := deps.gateway.products[0]
	if gw.name != "marketplace_orders" || gw.path != "/orders" || gw.proxyName != "MP-DataAPI-v1" {
		t.Errorf("gateway product = %+v", gw)
	}
	if gw.displayName != "Marketplace Orders" {
		t.Errorf("displayName = %q", gw.displayName)
	}

	// An empty sample payload is fetched from the data test endpoint.
	if len(deps.samples.fetches) != 1 || deps.samples.fetches[0] != "/data/orders" {
		t.Errorf("fetches = %v", deps.samples.fetches)
	}
	if result.SamplePayload != `{"id": 1}` {
		t.Errorf("samplePayload = %q", result.SamplePayload)
	}

	// An empty spec is generated from the fetched sample.
	if result.SpecContents != `{"openapi": "3.0.0"}` {
		t.Errorf("specContents = %q", result.SpecContents)
	}
	if len(deps.generator.prompts) != 1 {
		t.Fatalf("generator calls = %d, want 1", len(deps.generator.prompts))
	}
	prompt := deps.generator.prompts[0]
	if !strings.Contains(prompt, "https://api.example.com") {
		t.Errorf("prompt missing server host: %q", prompt)
	}
	if !strings.Contains(prompt, "/v1/data/orders") {
		t.Errorf("prompt missing path: %q", prompt)
	}
	if strings.Contains(prompt, `"id"`) || !strings.Contains(prompt, `'id'`) {
		t.Errorf("payload quotes not swapped in prompt: %q", prompt)
	}

	if _, ok := deps.products.saved["default/orders"]; !ok {
		t.Error("product not persisted")
	}

	wantSteps := []string{"register", "deployment", "version", "spec"}
	if len(deps.registrar.calls) != len(wantSteps) {
		t.Fatalf("registrar calls = %v", deps.registrar.calls)
	}
	for i, step := range wantSteps {
		if deps.registrar.calls[i] != step {
			t.Errorf("registrar step %d = %q, want %q", i, deps.registrar.calls[i], step)
		}
	}
}

func TestCreateSourceRouting(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantProxy string
		wantPath  string
	}{
		{"bigquery query", entity.SourceBigQuery, "MP-DataAPI-v1", "/orders"},
		{"bigquery table", entity.SourceBigQueryTable, "MP-DataAPI-v1", "/orders"},
		{"generic api", entity.SourceAPI, "MP-ServicesAPI-v1", "/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUsecase(t)

			product := &entity.DataProduct{
				ID:            "orders",
				Name:          "Orders",
				Source:        tt.source,
				Entity:        "orders",
				Query:         "q",
				Protocols:     []string{entity.ProtocolAPI},
				SamplePayload: `{"id": 1}`,
				SpecContents:  "{}",
			}

			if _, err := uc.Create(context.Background(), "default", product); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if len(deps.gateway.products) != 1 {
				t.Fatalf("gateway products = %d, want 1", len(deps.gateway.products))
			}
			gw := deps.gateway.products[0]
			if gw.proxyName != tt.wantProxy {
				t.Errorf("proxy = %q, want %q", gw.proxyName, tt.wantProxy)
			}
			if gw.path != tt.wantPath {
				t.Errorf("path = %q, want %q", gw.path, tt.wantPath)
			}

			// Provided payload and spec suppress the fetch and generation.
			if len(deps.samples.fetches) != 0 {
				t.Errorf("unexpected sample fetches: %v", deps.samples.fetches)
			}
			if len(deps.generator.prompts) != 0 {
				t.Errorf("unexpected generator calls: %v", deps.generator.prompts)
			}
		})
	}
}

func TestCreateGenAITestProduct(t *testing.T) {
	uc, deps := newTestUsecase(t)

	product := &entity.DataProduct{
		ID:            "mock-orders",
		Name:          "Mock Orders",
		Source:        entity.SourceGenAITest,
		Entity:        "orders",
		SamplePayload: `{"mock": true}`,
	}

	result, err := uc.Create(context.Background(), "default", product)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// The stored sample is served from the config map under the -mock key.
	if len(deps.gateway.kvmWrites) != 1 {
		t.Fatalf("kvm writes = %d, want 1", len(deps.gateway.kvmWrites))
	}
	kvm := deps.gateway.kvmWrites[0]
	if kvm.key != "orders-mock" || kvm.value != `{"mock": true}` {
		t.Errorf("kvm write = %+v", kvm)
	}

	if len(deps.gateway.products) != 1 {
		t.Fatalf("gateway products = %d, want 1", len(deps.gateway.products))
	}
	gw := deps.gateway.products[0]
	if gw.path != "/orders" || gw.proxyName != "MP-ServicesAPI-v1" {
		t.Errorf("gateway product = %+v", gw)
	}
	if result.ApigeeProductID != "marketplace_mock-orders" {
		t.Errorf("apigeeProductId = %q", result.ApigeeProductID)
	}
}

func TestCreateAIModelProduct(t *testing.T) {
	uc, deps := newTestUsecase(t)

	product := &entity.DataProduct{
		ID:                  "sentiment",
		Name:                "Sentiment",
		Source:              entity.SourceAIModel,
		Entity:              "sentiment",
		Query:               "gemini-1.5-flash-002",
		QueryAdditionalInfo: "You score the sentiment of a text.",
	}

	result, err := uc.Create(context.Background(), "default", product)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Model name and system prompt are staged in the config map.
	if len(deps.gateway.kvmWrites) != 2 {
		t.Fatalf("kvm writes = %d, want 2", len(deps.gateway.kvmWrites))
	}
	if deps.gateway.kvmWrites[0].key != "sentiment-model" || deps.gateway.kvmWrites[0].value != "gemini-1.5-flash-002" {
		t.Errorf("model write = %+v", deps.gateway.kvmWrites[0])
	}
	if deps.gateway.kvmWrites[1].key != "sentiment-systemprompt" || deps.gateway.kvmWrites[1].value != "You score the sentiment of a text." {
		t.Errorf("system prompt write = %+v", deps.gateway.kvmWrites[1])
	}

	if len(deps.gateway.products) != 1 {
		t.Fatalf("gateway products = %d, want 1", len(deps.gateway.products))
	}
	gw := deps.gateway.products[0]
	if gw.path != "/v1/genai/sentiment" || gw.proxyName != "MP-GenAIAPI-v1" {
		t.Errorf("gateway product = %+v", gw)
	}
	if result.ApigeeProductID != "marketplace_sentiment" {
		t.Errorf("apigeeProductId = %q", result.ApigeeProductID)
	}
}

func TestCreateSampleFetchFailureIsFatal(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.samples.fetchErr = errors.New("endpoint down")

	product := &entity.DataProduct{
		ID:        "orders",
		Name:      "Orders",
		Source:    entity.SourceBigQuery,
		Entity:    "orders",
		Protocols: []string{entity.ProtocolAPI},
	}

	_, err := uc.Create(context.Background(), "default", product)
	if err == nil {
		t.Fatal("expected error when sample fetch fails")
	}
	if len(deps.products.saved) != 0 {
		t.Error("product must not be persisted after fetch failure")
	}
	if len(deps.registrar.calls) != 0 {
		t.Error("catalog registration must not run after fetch failure")
	}
}

func TestCreateSpecGenerationFailureIsFatal(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.generator.err = errors.New("model unavailable")

	product := &entity.DataProduct{
		ID:            "orders",
		Name:          "Orders",
		Source:        entity.SourceBigQuery,
		Entity:        "orders",
		Protocols:     []string{entity.ProtocolAPI},
		SamplePayload: `{"id": 1}`,
	}

	_, err := uc.Create(context.Background(), "default", product)
	if err == nil {
		t.Fatal("expected error when spec generation fails")
	}
	if len(deps.products.saved) != 0 {
		t.Error("product must not be persisted after generation failure")
	}
}

func TestCreatePersistFailureIsFatal(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.products.saveErr = errors.New("store unavailable")

	product := &entity.DataProduct{
		ID:            "orders",
		Name:          "Orders",
		Source:        entity.SourceAPI,
		Entity:        "orders",
		Protocols:     []string{entity.ProtocolAPI},
		SamplePayload: `{"id": 1}`,
		SpecContents:  "{}",
	}

	_, err := uc.Create(context.Background(), "default", product)
	if err == nil {
		t.Fatal("expected error when the document write fails")
	}
	if len(deps.registrar.calls) != 0 {
		t.Error("catalog registration must not run after a failed write")
	}
}

func TestCreateGatewayFailureIsBestEffort(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.gateway.productErr = errors.New("gateway down")

	product := &entity.DataProduct{
		ID:            "orders",
		Name:          "Orders",
		Source:        entity.SourceAPI,
		Entity:        "orders",
		Protocols:     []string{entity.ProtocolAPI},
		SamplePayload: `{"id": 1}`,
		SpecContents:  "{}",
	}

	result, err := uc.Create(context.Background(), "default", product)
	if err != nil {
		t.Fatalf("gateway failure must not fail the request: %v", err)
	}

	// The id is recorded even when the create call failed.
	if result.ApigeeProductID != "marketplace_orders" {
		t.Errorf("apigeeProductId = %q", result.ApigeeProductID)
	}
	if _, ok := deps.products.saved["default/orders"]; !ok {
		t.Error("product must still be persisted")
	}
}

func TestCreateCatalogRegistrationContinuesAfterFailure(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.registrar.failStep = "deployment"

	product := &entity.DataProduct{
		ID:            "orders",
		Name:          "Orders",
		Source:        entity.SourceAPI,
		Entity:        "orders",
		Protocols:     []string{entity.ProtocolAPI},
		SamplePayload: `{"id": 1}`,
		SpecContents:  "{}",
	}

	if _, err := uc.Create(context.Background(), "default", product); err != nil {
		t.Fatalf("catalog failure must not fail the request: %v", err)
	}

	// The remaining steps still run after a failed one.
	want := []string{"register", "version", "spec"}
	if len(deps.registrar.calls) != len(want) {
		t.Fatalf("registrar calls = %v, want %v", deps.registrar.calls, want)
	}
	for i, step := range want {
		if deps.registrar.calls[i] != step {
			t.Errorf("step %d = %q, want %q", i, deps.registrar.calls[i], step)
		}
	}
}

func TestCreateDataSync(t *testing.T) {
	uc, deps := newTestUsecase(t)

	product := &entity.DataProduct{
		ID:            "orders",
		Name:          "Orders",
		Source:        entity.SourceBigQueryTable,
		Entity:        "orders",
		Query:         "dataset.orders",
		Protocols:     []string{entity.ProtocolAPI, entity.ProtocolDataSync},
		SamplePayload: `{"id": 1}`,
		SpecContents:  "{}",
		MonetizationData: &entity.MonetizationRatePlan{
			DisplayName: "Standard",
		},
	}

	result, err := uc.Create(context.Background(), "default", product)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// The storage product overrides the primary gateway product id.
	if result.ApigeeProductID != "marketplace_storage_orders" {
		t.Errorf("apigeeProductId = %q, want marketplace_storage_orders", result.ApigeeProductID)
	}

	if len(deps.gateway.products) != 2 {
		t.Fatalf("gateway products = %d, want 2", len(deps.gateway.products))
	}
	storage := deps.gateway.products[1]
	if storage.name != "marketplace_storage_orders" || storage.path != "/" || storage.proxyName != "MP-StorageAPI-v1" {
		t.Errorf("storage product = %+v", storage)
	}
	if storage.displayName != "Marketplace Storage Orders" {
		t.Errorf("storage displayName = %q", storage.displayName)
	}

	// The rate plan binds to the primary product, not the storage one.
	if len(deps.gateway.ratePlans) != 1 {
		t.Fatalf("rate plans = %d, want 1", len(deps.gateway.ratePlans))
	}
	if deps.gateway.ratePlans[0].productID != "marketplace_orders" {
		t.Errorf("rate plan product = %q, want marketplace_orders", deps.gateway.ratePlans[0].productID)
	}

	// The first sync pull fires once.
	if len(deps.samples.exports) != 1 || deps.samples.exports[0] != "orders" {
		t.Errorf("exports = %v", deps.samples.exports)
	}

	// The sync side channel duplicates the source branch's config entry.
	if len(deps.gateway.kvmWrites) != 2 {
		t.Fatalf("kvm writes = %d, want 2", len(deps.gateway.kvmWrites))
	}
	for i, kvm := range deps.gateway.kvmWrites {
		if kvm.key != "orders" || kvm.value != "dataset.orders" {
			t.Errorf("kvm write %d = %+v", i, kvm)
		}
	}
}

func TestCreateReplacesExistingDocument(t *testing.T) {
	uc, deps := newTestUsecase(t)

	product := func(desc string) *entity.DataProduct {
		return &entity.DataProduct{
			ID:            "orders",
			Name:          "Orders",
			Description:   desc,
			Source:        entity.SourceAPI,
			Entity:        "orders",
			Protocols:     []string{entity.ProtocolAPI},
			SamplePayload: `{"id": 1}`,
			SpecContents:  "{}",
		}
	}

	if _, err := uc.Create(context.Background(), "default", product("first")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := uc.Create(context.Background(), "default", product("second")); err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	// Re-creating the same id replaces the stored document.
	if len(deps.products.saved) != 1 {
		t.Fatalf("documents = %d, want 1", len(deps.products.saved))
	}
	if deps.products.saved["default/orders"].Description != "second" {
		t.Errorf("document not replaced: %q", deps.products.saved["default/orders"].Description)
	}
}

func TestCreateRatePlanFailureIsBestEffort(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.gateway.ratePlanErr = errors.New("monetization not enabled")

	product := &entity.DataProduct{
		ID:               "orders",
		Name:             "Orders",
		Source:           entity.SourceAPI,
		Entity:           "orders",
		Protocols:        []string{entity.ProtocolAPI},
		SamplePayload:    `{"id": 1}`,
		SpecContents:     "{}",
		MonetizationData: &entity.MonetizationRatePlan{DisplayName: "Standard"},
	}

	if _, err := uc.Create(context.Background(), "default", product); err != nil {
		t.Fatalf("rate plan failure must not fail the request: %v", err)
	}
	if len(deps.products.saved) != 1 {
		t.Error("product must still be persisted")
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		roles   []string
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "internal user sees internal products",
			email:   "dev@example.com",
			roles:   []string{"internal"},
			wantIDs: []string{"internal-only", "mixed"},
		},
		{
			name:    "partner user sees partner products",
			email:   "partner@example.com",
			roles:   []string{"partner"},
			wantIDs: []string{"mixed"},
		},
		{
			name:    "no matching audience",
			email:   "guest@example.com",
			roles:   []string{"external"},
			wantIDs: []string{},
		},
		{
			name:    "email required",
			email:   "",
			wantErr: true,
		},
		{
			name:    "unknown user",
			email:   "nobody@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUsecase(t)

			deps.products.saved["default/internal-only"] = &entity.DataProduct{
				ID: "internal-only", Audiences: []string{"internal"},
			}
			deps.products.saved["default/mixed"] = &entity.DataProduct{
				ID: "mixed", Audiences: []string{"internal", "partner"},
			}
			if tt.email != "" && tt.email != "nobody@example.com" {
				deps.users.users[tt.email] = &entity.User{Email: tt.email, Roles: tt.roles}
			}

			products, err := uc.List(context.Background(), "default", tt.email)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}

			got := make(map[string]bool, len(products))
			for _, p := range products {
				got[p.ID] = true
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.wantIDs))
			}
			for _, id := range tt.wantIDs {
				if !got[id] {
					t.Errorf("missing product %q", id)
				}
			}
		})
	}
}

func TestGetSpec(t *testing.T) {
	uc, deps := newTestUsecase(t)
	deps.products.saved["default/orders"] = &entity.DataProduct{
		ID:           "orders",
		SpecContents: `{"openapi": "3.0.0"}`,
	}

	spec, err := uc.GetSpec(context.Background(), "default", "orders")
	if err != nil {
		t.Fatalf("GetSpec failed: %v", err)
	}
	if spec != `{"openapi": "3.0.0"}` {
		t.Errorf("spec = %q", spec)
	}

	if _, err := uc.GetSpec(context.Background(), "default", "missing"); !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestGenerateSpec(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantPath string
	}{
		{"services path", entity.SourceAPI, "/v1/services/orders"},
		{"data path for bigquery", entity.SourceBigQuery, "/v1/data/orders"},
		{"data path for bigquery table", entity.SourceBigQueryTable, "/v1/data/orders"},
		{"mock path for test products", entity.SourceGenAITest, "/v1/test/mock/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUsecase(t)

			product := &entity.DataProduct{
				ID:            "orders",
				Name:          "Orders",
				Source:        tt.source,
				Entity:        "orders",
				SpecPrompt:    "Spec for ${name} at ${apigeeHost} path ${path}.",
				SamplePayload: `{"total": "12"}`,
			}

			result, err := uc.GenerateSpec(context.Background(), product)
			if err != nil {
				t.Fatalf("GenerateSpec failed: %v", err)
			}
			if result.SpecContents != `{"openapi": "3.0.0"}` {
				t.Errorf("specContents = %q", result.SpecContents)
			}

			if len(deps.generator.prompts) != 1 {
				t.Fatalf("generator calls = %d, want 1", len(deps.generator.prompts))
			}
			prompt := deps.generator.prompts[0]
			if !strings.Contains(prompt, "Spec for Orders at api.example.com path "+tt.wantPath+".") {
				t.Errorf("placeholders not replaced: %q", prompt)
			}
			if !strings.Contains(prompt, `{'total': '12'}`) {
				t.Errorf("payload quotes not swapped: %q", prompt)
			}
		})
	}

	t.Run("prompt required", func(t *testing.T) {
		uc, _ := newTestUsecase(t)
		_, err := uc.GenerateSpec(context.Background(), &entity.DataProduct{ID: "x"})
		if !domain.IsInvalidInput(err) {
			t.Errorf("expected invalid input error, got %v", err)
		}
	})
}
