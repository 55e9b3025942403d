package dto

import (
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// ProductResponse is the catalog view of a product.
type ProductResponse struct {
	ID          int64     `json:"id"`
	SellerID    int64     `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductDetailsResponse adds gallery URLs to the product view.
type ProductDetailsResponse struct {
	ProductResponse
	Images []string `json:"images"`
}

// ProductListResponse is one catalog page plus the total match count.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

// NewProductResponse converts the domain model.
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Approved:    p.Approved,
		CreatedAt:   p.CreatedAt,
	}
}

// NewProductResponses converts a slice, never returning nil.
func NewProductResponses(products []model.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, NewProductResponse(p))
	}
	return result
}
