// Package types holds the wire shapes the CLI exchanges with the API
// server. Product and configuration documents reuse the server's entity
// package; only the envelope shapes live here.
package types

// APIResponse represents a generic API response with typed data
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ListData represents a generic list data structure
type ListData[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// SpecData is the spec retrieval payload
type SpecData struct {
	ID   string `json:"id"`
	Spec string `json:"spec"`
}
