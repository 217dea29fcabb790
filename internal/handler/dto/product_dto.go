// Package dto holds request and response shapes that differ from the
// domain entities. Product documents are bound and returned as
// entity.DataProduct directly: the wire format and the stored document
// are the same object.
package dto

import "github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"

// SpecResponse wraps the stored OpenAPI spec text of a product.
type SpecResponse struct {
	ID   string `json:"id"`
	Spec string `json:"spec"`
}

// DataGenRequest is the taxonomy generation request body.
type DataGenRequest struct {
	Topic         string `json:"topic"`
	CategoryCount int    `json:"categoryCount"`
}

// ToEntity converts the request to a domain job.
func (r DataGenRequest) ToEntity() *entity.DataGenJob {
	return &entity.DataGenJob{
		Topic:         r.Topic,
		CategoryCount: r.CategoryCount,
	}
}
