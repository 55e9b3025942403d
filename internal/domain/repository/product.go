package repository

import (
	"context"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category     string
	Query        string
	SortDesc     bool
	ApprovedOnly bool
	PendingOnly  bool
	SellerID     int64
	Limit        int
	Offset       int
}

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product, file *model.ProductFile, images []model.ProductImage) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	Delete(ctx context.Context, id, sellerID int64) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	FileForProduct(ctx context.Context, productID int64) (*model.ProductFile, error)
	ImagesForProduct(ctx context.Context, productID int64) ([]model.ProductImage, error)
	CountBySeller(ctx context.Context, sellerID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
