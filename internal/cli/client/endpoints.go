package client

const (
	// API prefix
	apiPrefix = "/api"

	// Product endpoints
	endpointProducts            = apiPrefix + "/products"               // GET, POST
	endpointProductByID         = apiPrefix + "/products/%s"            // GET
	endpointProductSpec         = apiPrefix + "/products/%s/spec"       // GET
	endpointProductGenerateSpec = apiPrefix + "/products/generate/spec" // POST

	// Category endpoints
	endpointCategories     = apiPrefix + "/categories"    // GET, POST
	endpointCategoryByName = apiPrefix + "/categories/%s" // DELETE

	// Taxonomy and catalog endpoints
	endpointDataGen = apiPrefix + "/datagen" // POST
	endpointAPIHub  = apiPrefix + "/apihub"  // GET
)
