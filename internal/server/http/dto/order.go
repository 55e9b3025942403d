package dto

import (
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// OrderResponse is the buyer's order history entry.
type OrderResponse struct {
	ID        int64     `json:"id"`
	Amount    string    `json:"amount"`
	IsPaid    bool      `json:"isPaid"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewOrderResponses converts the domain models, never returning nil.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderResponse{
			ID:        o.ID,
			Amount:    o.Amount.StringFixed(2),
			IsPaid:    o.IsPaid,
			CreatedAt: o.CreatedAt,
		})
	}
	return result
}

// DownloadResponse carries a short-lived presigned URL and the filename to
// save the asset under.
type DownloadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// LibraryItemResponse is one entitled product in the buyer's library.
type LibraryItemResponse struct {
	Product   ProductResponse `json:"product"`
	GrantedAt time.Time       `json:"grantedAt"`
}
