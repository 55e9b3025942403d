package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

// ReportingUseCase serves seller and admin dashboards.
type ReportingUseCase struct {
	reporting repository.ReportingRepository
	wallets   repository.WalletRepository
	products  repository.ProductRepository
}

// NewReportingUseCase constructs ReportingUseCase.
func NewReportingUseCase(reporting repository.ReportingRepository, wallets repository.WalletRepository, products repository.ProductRepository) *ReportingUseCase {
	return &ReportingUseCase{reporting: reporting, wallets: wallets, products: products}
}

// SellerStats aggregates the seller dashboard numbers.
func (u *ReportingUseCase) SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error) {
	return u.reporting.SellerStats(ctx, sellerID)
}

// WalletBalance returns the seller's earnings balance. Sellers who have not
// sold anything yet get a zero wallet, not an error.
func (u *ReportingUseCase) WalletBalance(ctx context.Context, sellerID int64) (decimal.Decimal, error) {
	wallet, err := u.wallets.Get(ctx, sellerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

// SellerListings returns the seller's own products, including unapproved
// ones.
func (u *ReportingUseCase) SellerListings(ctx context.Context, sellerID int64) ([]model.Product, error) {
	products, _, err := u.products.List(ctx, repository.ProductFilter{SellerID: sellerID, SortDesc: true, Limit: 100})
	return products, err
}

// PlatformStats aggregates the admin dashboard numbers.
func (u *ReportingUseCase) PlatformStats(ctx context.Context) (*model.PlatformStats, error) {
	return u.reporting.PlatformStats(ctx)
}

// PendingProducts lists unapproved listings awaiting moderation.
func (u *ReportingUseCase) PendingProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	products, _, err := u.products.List(ctx, repository.ProductFilter{PendingOnly: true, Limit: limit})
	return products, err
}
