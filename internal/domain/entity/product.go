package entity

// Data source types understood by the provisioning flow.
const (
	SourceBigQuery      = "BigQuery"
	SourceBigQueryTable = "BigQueryTable"
	SourceGenAITest     = "GenAITest"
	SourceAIModel       = "AI"
	SourceAPI           = "API"
)

// Product protocols. A product can expose more than one.
const (
	ProtocolAPI          = "API"
	ProtocolAnalyticsHub = "Analytics Hub"
	ProtocolEvent        = "Event"
	ProtocolDataSync     = "Data sync"
)

// Product audiences, matched against user roles when listing.
const (
	AudienceInternal = "internal"
	AudiencePartner  = "partner"
	AudienceExternal = "external"
)

// DataProduct is the central marketplace entity. It is supplied by the
// caller on creation and enriched by the provisioning flow before being
// persisted (samplePayload, specContents, specUrl, apigeeProductId).
type DataProduct struct {
	ID          string `json:"id" firestore:"id"`
	Site        string `json:"site" firestore:"site"`
	Name        string `json:"name" firestore:"name"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	Description string `json:"description" firestore:"description"`
	Status      string `json:"status" firestore:"status"`

	// Entity is the logical data-object name. It seeds the gateway
	// request path and the key-value map keys for the product.
	Entity string `json:"entity" firestore:"entity"`

	Source     string   `json:"source" firestore:"source"`
	Protocols  []string `json:"protocols" firestore:"protocols"`
	Audiences  []string `json:"audiences" firestore:"audiences"`
	Categories []string `json:"categories" firestore:"categories"`

	// Query holds the table reference, SQL, or model name depending on
	// Source. QueryAdditionalInfo carries the system prompt for AI
	// sources.
	Query               string `json:"query" firestore:"query"`
	QueryAdditionalInfo string `json:"queryAdditionalInfo" firestore:"queryAdditionalInfo"`

	SamplePayload   string `json:"samplePayload" firestore:"samplePayload"`
	SpecPrompt      string `json:"specPrompt" firestore:"specPrompt"`
	SpecContents    string `json:"specContents" firestore:"specContents"`
	SpecURL         string `json:"specUrl" firestore:"specUrl"`
	ApigeeProductID string `json:"apigeeProductId" firestore:"apigeeProductId"`

	OwnerName  string `json:"ownerName" firestore:"ownerName"`
	OwnerEmail string `json:"ownerEmail" firestore:"ownerEmail"`

	// MonetizationData, when present, triggers rate-plan creation on the
	// gateway product.
	MonetizationData *MonetizationRatePlan `json:"monetizationData,omitempty" firestore:"monetizationData"`
}

// HasProtocol reports whether the product declares the given protocol.
func (p *DataProduct) HasProtocol(protocol string) bool {
	for _, pr := range p.Protocols {
		if pr == protocol {
			return true
		}
	}
	return false
}

// VisibleTo reports whether any of the product's audiences matches one of
// the given user roles.
func (p *DataProduct) VisibleTo(roles []string) bool {
	for _, a := range p.Audiences {
		for _, r := range roles {
			if a == r {
				return true
			}
		}
	}
	return false
}

// MonetizationRatePlan describes an Apigee rate plan attached to a gateway
// product. Name is kept in the stored document but stripped from the
// management-API create call, which assigns its own resource name.
type MonetizationRatePlan struct {
	Name                    string         `json:"name,omitempty" firestore:"name"`
	DisplayName             string         `json:"displayName" firestore:"displayName"`
	Description             string         `json:"description,omitempty" firestore:"description"`
	BillingPeriod           string         `json:"billingPeriod,omitempty" firestore:"billingPeriod"`
	PaymentFundingModel     string         `json:"paymentFundingModel,omitempty" firestore:"paymentFundingModel"`
	CurrencyCode            string         `json:"currencyCode,omitempty" firestore:"currencyCode"`
	SetupFee                *Money         `json:"setupFee,omitempty" firestore:"setupFee"`
	FixedRecurringFee       *Money         `json:"fixedRecurringFee,omitempty" firestore:"fixedRecurringFee"`
	ConsumptionPricingType  string         `json:"consumptionPricingType,omitempty" firestore:"consumptionPricingType"`
	ConsumptionPricingRates []RatePlanRate `json:"consumptionPricingRates,omitempty" firestore:"consumptionPricingRates"`
	State                   string         `json:"state,omitempty" firestore:"state"`
	StartTime               int64          `json:"startTime,omitempty,string" firestore:"startTime"`
}

// ForCreate returns a copy of the plan suitable for the rate-plan create
// call, with the resource name cleared.
func (m *MonetizationRatePlan) ForCreate() *MonetizationRatePlan {
	plan := *m
	plan.Name = ""
	return &plan
}

// Money is an Apigee monetary amount.
type Money struct {
	CurrencyCode string `json:"currencyCode,omitempty" firestore:"currencyCode"`
	Units        int64  `json:"units,omitempty,string" firestore:"units"`
	Nanos        int32  `json:"nanos,omitempty" firestore:"nanos"`
}

// RatePlanRate is a single consumption pricing band.
type RatePlanRate struct {
	Fee   *Money `json:"fee,omitempty" firestore:"fee"`
	Start int64  `json:"start,omitempty,string" firestore:"start"`
	End   int64  `json:"end,omitempty,string" firestore:"end"`
}
