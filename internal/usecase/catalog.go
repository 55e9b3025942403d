package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/objectstore"
	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

const defaultPageSize = 12

// UploadedAsset is an incoming multipart file destined for object storage.
type UploadedAsset struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateListingInput carries a seller's new product submission.
type CreateListingInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	File        *UploadedAsset
	Images      []UploadedAsset
}

// ProductDetails is a product with its resolved gallery URLs.
type ProductDetails struct {
	Product   model.Product
	ImageURLs []string
}

// CatalogUseCase manages product listings and their stored assets.
type CatalogUseCase struct {
	products    repository.ProductRepository
	store       objectstore.Store
	filesBucket string
	mediaBucket string
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, store objectstore.Store, filesBucket, mediaBucket string) *CatalogUseCase {
	return &CatalogUseCase{products: products, store: store, filesBucket: filesBucket, mediaBucket: mediaBucket}
}

// List returns a catalog page and the total match count for pagination.
func (u *CatalogUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	return u.products.List(ctx, filter)
}

// Search returns up to five approved products matching the query, for the
// navbar typeahead.
func (u *CatalogUseCase) Search(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	products, _, err := u.products.List(ctx, repository.ProductFilter{
		Query:        query,
		ApprovedOnly: true,
		Limit:        5,
	})
	return products, err
}

// Get resolves one product with its gallery image URLs.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*ProductDetails, error) {
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := u.products.ImagesForProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, u.store.PublicURL(u.mediaBucket, img.ObjectKey))
	}

	return &ProductDetails{Product: *p, ImageURLs: urls}, nil
}

// CreateListing validates the submission, uploads the downloadable file and
// gallery images, then inserts the product. New listings start unapproved.
func (u *CatalogUseCase) CreateListing(ctx context.Context, sellerID int64, in CreateListingInput) (*model.Product, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: name and category are required", domainErrors.ErrValidation)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	if in.File == nil {
		return nil, fmt.Errorf("%w: product file is required", domainErrors.ErrValidation)
	}

	fileKey := objectKey(sellerID, in.File.Filename)
	if err := u.store.Upload(ctx, u.filesBucket, fileKey, in.File.Content, in.File.Size, in.File.ContentType); err != nil {
		return nil, err
	}

	imageRows := make([]model.ProductImage, 0, len(in.Images))
	for i, img := range in.Images {
		key := objectKey(sellerID, img.Filename)
		if err := u.store.Upload(ctx, u.mediaBucket, key, img.Content, img.Size, img.ContentType); err != nil {
			return nil, err
		}
		imageRows = append(imageRows, model.ProductImage{ObjectKey: key, Position: i})
	}

	product := &model.Product{
		SellerID:    sellerID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price.Round(2),
	}
	file := &model.ProductFile{
		ObjectKey: fileKey,
		Filename:  in.File.Filename,
		SizeBytes: in.File.Size,
	}
	return u.products.Create(ctx, product, file, imageRows)
}

// DeleteListing removes the seller's own product. The (id, sellerID) pair
// keeps sellers from deleting each other's listings.
func (u *CatalogUseCase) DeleteListing(ctx context.Context, sellerID, productID int64) error {
	return u.products.Delete(ctx, productID, sellerID)
}

// SetApproved flips a product's moderation flag (admin only).
func (u *CatalogUseCase) SetApproved(ctx context.Context, productID int64, approved bool) error {
	return u.products.SetApproved(ctx, productID, approved)
}

func objectKey(sellerID int64, filename string) string {
	return fmt.Sprintf("%d/%s%s", sellerID, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
}
