package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// Gateway proxies serving marketplace traffic. BigQuery-backed sources
// route to the data proxy, AI-model sources to the GenAI proxy, and
// everything else to the generic services proxy.
const (
	proxyData     = "MP-DataAPI-v1"
	proxyServices = "MP-ServicesAPI-v1"
	proxyGenAI    = "MP-GenAIAPI-v1"
	proxyStorage  = "MP-StorageAPI-v1"

	kvmName = "marketplace-kvm"
)

// productUsecase orchestrates product provisioning: source-specific
// gateway side effects, optional monetization, document persistence, and
// catalog registration. There is no persisted intermediate state and no
// rollback; best-effort steps log their failures and the flow continues.
type productUsecase struct {
	products  domain.ProductRepository
	users     domain.UserRepository
	gateway   domain.GatewayClient
	registrar domain.CatalogRegistrar
	generator domain.SpecGenerator
	samples   domain.SampleDataClient
	apiHost   string
	logger    *slog.Logger

	// runAsync dispatches fire-and-forget side calls (config-map
	// writes, the first data-sync pull). At-most-once, no confirmation,
	// never awaited by the critical path. Tests swap in a synchronous
	// runner.
	runAsync func(fn func())
}

// NewProductUsecase creates the product orchestrator.
func NewProductUsecase(
	products domain.ProductRepository,
	users domain.UserRepository,
	gateway domain.GatewayClient,
	registrar domain.CatalogRegistrar,
	generator domain.SpecGenerator,
	samples domain.SampleDataClient,
	apiHost string,
	logger *slog.Logger,
) domain.ProductUsecase {
	return &productUsecase{
		products:  products,
		users:     users,
		gateway:   gateway,
		registrar: registrar,
		generator: generator,
		samples:   samples,
		apiHost:   apiHost,
		logger:    logger,
		runAsync:  func(fn func()) { go fn() },
	}
}

// Create provisions a new product. Only input validation, sample
// fetching, spec generation, and the document write can fail the
// request; gateway and catalog calls are best effort and the response
// always reflects the orchestrator's in-memory view of the product.
func (u *productUsecase) Create(ctx context.Context, site string, product *entity.DataProduct) (*entity.DataProduct, error) {
	if err := u.validateProduct(product); err != nil {
		return nil, err
	}
	if product.Site == "" {
		product.Site = site
	}

	proxyName, callPath := classifySource(product.Source)
	product.SpecURL = fmt.Sprintf("/api/products/%s/spec?site=%s", product.ID, site)

	switch {
	case product.Source == entity.SourceGenAITest && product.SamplePayload != "":
		// Mock-backed test product: the gateway serves the stored
		// sample directly.
		u.setKVMEntryAsync(ctx, product.Entity+"-mock", product.SamplePayload)
		u.createGatewayProduct(ctx, product, "/"+product.Entity, proxyName)

	case (strings.HasPrefix(product.Source, "BigQuery") || product.Source == entity.SourceAPI) &&
		product.HasProtocol(entity.ProtocolAPI) && product.Entity != "":
		u.setKVMEntryAsync(ctx, product.Entity, product.Query)

		if product.SamplePayload == "" {
			sample, err := u.samples.FetchSample(ctx, callPath, product.Entity)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch sample payload for %q: %w", product.Entity, err)
			}
			product.SamplePayload = sample
		}

		if product.SpecContents == "" {
			prompt := buildSpecPrompt(product.Name, u.apiHost, "/v1"+callPath+"/"+product.Entity, product.SamplePayload)
			spec, err := u.generator.Generate(ctx, prompt)
			if err != nil {
				return nil, fmt.Errorf("failed to generate spec for %q: %w", product.ID, err)
			}
			product.SpecContents = spec
		}

		u.createGatewayProduct(ctx, product, "/"+product.Entity, proxyName)

	case product.Source == entity.SourceAIModel:
		u.setKVMEntryAsync(ctx, product.Entity+"-model", product.Query)
		u.setKVMEntryAsync(ctx, product.Entity+"-systemprompt", product.QueryAdditionalInfo)
		u.createGatewayProduct(ctx, product, "/v1/genai/"+product.Entity, proxyName)
	}

	// The rate plan binds to the gateway product of the source branch,
	// before any storage product overrides apigeeProductId.
	if product.MonetizationData != nil {
		if err := u.gateway.CreateRatePlan(ctx, product.ApigeeProductID, product.MonetizationData); err != nil {
			u.logger.Error("failed to create monetization rate plan",
				"product", product.ID,
				"error", err,
			)
		}
	}

	if product.HasProtocol(entity.ProtocolDataSync) {
		// Storage-export side channel: duplicate config entry, a
		// dedicated storage gateway product, and a first sync pull.
		u.setKVMEntryAsync(ctx, product.Entity, product.Query)

		storageID := "marketplace_storage_" + product.ID
		if err := u.gateway.CreateAPIProduct(ctx, storageID, "Marketplace Storage "+product.Name, "/", proxyStorage); err != nil {
			u.logger.Error("failed to create storage gateway product",
				"product", product.ID,
				"error", err,
			)
		}
		product.ApigeeProductID = storageID

		exportCtx := context.WithoutCancel(ctx)
		sampleEntity := product.Entity
		u.runAsync(func() {
			if err := u.samples.TriggerExport(exportCtx, sampleEntity); err != nil {
				u.logger.Warn("first data sync trigger failed",
					"entity", sampleEntity,
					"error", err,
				)
			}
		})
	}

	// The document write is the only hard dependency of the request
	// besides input parsing. Create-or-replace, no concurrency check.
	if err := u.products.Save(ctx, site, product); err != nil {
		return nil, fmt.Errorf("failed to persist product %q: %w", product.ID, err)
	}

	u.registerInCatalog(ctx, product)

	u.logger.Info("product provisioned",
		"product", product.ID,
		"site", product.Site,
		"source", product.Source,
		"gateway_product", product.ApigeeProductID,
	)

	return product, nil
}

// createGatewayProduct creates the primary gateway product and records
// its id on the product. A failed create is logged, not raised: the
// stored record may then reference an unprovisioned gateway product,
// which a later provisioning pass has to reconcile manually.
func (u *productUsecase) createGatewayProduct(ctx context.Context, product *entity.DataProduct, path, proxyName string) {
	gatewayID := "marketplace_" + product.ID
	if err := u.gateway.CreateAPIProduct(ctx, gatewayID, "Marketplace "+product.Name, path, proxyName); err != nil {
		u.logger.Error("failed to create gateway product",
			"product", product.ID,
			"gateway_product", gatewayID,
			"error", err,
		)
	}
	product.ApigeeProductID = gatewayID
}

// setKVMEntryAsync dispatches a config-map write off the critical path.
func (u *productUsecase) setKVMEntryAsync(ctx context.Context, key, value string) {
	callCtx := context.WithoutCancel(ctx)
	u.runAsync(func() {
		if err := u.gateway.SetKVMEntry(callCtx, kvmName, key, value); err != nil {
			u.logger.Error("failed to set config map entry",
				"map", kvmName,
				"key", key,
				"error", err,
			)
		}
	})
}

// registerInCatalog runs the four registration calls in order. Each
// failure is logged and the remaining calls still run; catalog
// visibility never blocks the product-creation response.
func (u *productUsecase) registerInCatalog(ctx context.Context, product *entity.DataProduct) {
	steps := []struct {
		name string
		call func(context.Context, *entity.DataProduct) error
	}{
		{"register api", u.registrar.RegisterAPI},
		{"create deployment", u.registrar.CreateDeployment},
		{"create version", u.registrar.CreateVersion},
		{"create version spec", u.registrar.CreateVersionSpec},
	}

	for _, step := range steps {
		if err := step.call(ctx, product); err != nil {
			u.logger.Error("catalog registration step failed",
				"step", step.name,
				"product", product.ID,
				"error", err,
			)
		}
	}
}

// List returns the site's products visible to the user with the given
// email, matched by audience against the user's roles.
func (u *productUsecase) List(ctx context.Context, site, email string) ([]*entity.DataProduct, error) {
	if email == "" {
		return nil, domain.NewInvalidInputError("email is required")
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	products, err := u.products.List(ctx, site)
	if err != nil {
		return nil, err
	}

	visible := make([]*entity.DataProduct, 0, len(products))
	for _, product := range products {
		if product.VisibleTo(user.Roles) {
			visible = append(visible, product)
		}
	}
	return visible, nil
}

// Get returns a single product.
func (u *productUsecase) Get(ctx context.Context, site, id string) (*entity.DataProduct, error) {
	return u.products.Get(ctx, site, id)
}

// GetSpec returns the stored OpenAPI spec text of a product.
func (u *productUsecase) GetSpec(ctx context.Context, site, id string) (string, error) {
	product, err := u.products.Get(ctx, site, id)
	if err != nil {
		return "", err
	}
	return product.SpecContents, nil
}

// GenerateSpec fills in specContents from the product's spec prompt
// template and sample payload.
func (u *productUsecase) GenerateSpec(ctx context.Context, product *entity.DataProduct) (*entity.DataProduct, error) {
	if product.SpecPrompt == "" {
		return nil, domain.NewInvalidInputError("specPrompt is required")
	}

	callPath := "services"
	if strings.HasPrefix(product.Source, "BigQuery") {
		callPath = "data"
	} else if product.Source == entity.SourceGenAITest {
		callPath = "test/mock"
	}

	prompt := strings.NewReplacer(
		"${name}", product.Name,
		"${apigeeHost}", u.apiHost,
		"${path}", "/v1/"+callPath+"/"+product.Entity,
	).Replace(product.SpecPrompt)

	// Double quotes in the embedded payload would collide with the
	// JSON the model is asked to emit.
	prompt += "   " + strings.ReplaceAll(product.SamplePayload, `"`, `'`)

	spec, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate spec: %w", err)
	}

	product.SpecContents = spec
	return product, nil
}

// validateProduct validates the creation request.
func (u *productUsecase) validateProduct(product *entity.DataProduct) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	if product.ID == "" {
		return domain.NewInvalidInputError("id is required")
	}
	if product.Name == "" {
		return domain.NewInvalidInputError("name is required")
	}
	if product.Source == "" {
		return domain.NewInvalidInputError("source is required")
	}
	return nil
}

// classifySource picks the proxy binding and test-endpoint path prefix
// for a product source.
func classifySource(source string) (proxyName, callPath string) {
	proxyName = proxyServices
	callPath = "/services"
	if strings.HasPrefix(source, "BigQuery") {
		proxyName = proxyData
		callPath = "/data"
	}
	if source == entity.SourceAIModel {
		proxyName = proxyGenAI
	}
	return proxyName, callPath
}

// buildSpecPrompt constructs the generation prompt for a product spec,
// embedding the sample payload with double quotes replaced so they do
// not collide with the requested JSON output.
func buildSpecPrompt(name, apiHost, path, payload string) string {
	payload = strings.ReplaceAll(payload, `"`, `'`)
	return fmt.Sprintf(
		"Generate an OpenAPI spec in json format with the name %s at the server https://%s. "+
			"It should have one GET operation at the %s path, be authorized with an API key in the x-api-key header, "+
			"and return the following data structure:\n\n%s",
		name, apiHost, path, payload,
	)
}
