package entity

// CatalogAttribute is an allowed value of an API Hub attribute. The lists
// are owned by the catalog service; this is a read-only snapshot shape.
type CatalogAttribute struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Immutable   bool   `json:"immutable,omitempty"`
}

// Attribute names loaded into the attribute cache at startup.
const (
	AttrTargetUser    = "system-target-user"
	AttrBusinessUnit  = "system-business-unit"
	AttrTeam          = "system-team"
	AttrMaturityLevel = "system-maturity-level"
	AttrRegions       = "regions"
	AttrGDPRRelevance = "gdpr-relevance"
	AttrBusinessType  = "business-type"
	AttrEnvironment   = "system-environment"
)

// CatalogAPI is a registered API resource as returned by the catalog
// service listing call.
type CatalogAPI struct {
	Name          string `json:"name"`
	DisplayName   string `json:"displayName"`
	Description   string `json:"description,omitempty"`
	Documentation struct {
		ExternalURI string `json:"externalUri,omitempty"`
	} `json:"documentation,omitempty"`
	Owner struct {
		DisplayName string `json:"displayName,omitempty"`
		Email       string `json:"email,omitempty"`
	} `json:"owner,omitempty"`
}

// MarketplaceConfig is the per-site configuration document, currently just
// the category list shown in the storefront.
type MarketplaceConfig struct {
	Categories []string `json:"categories" firestore:"categories"`
}

// DataGenJob describes a request to seed the catalog with generated
// category attributes for a topic.
type DataGenJob struct {
	Topic         string `json:"topic"`
	CategoryCount int    `json:"categoryCount"`
}
