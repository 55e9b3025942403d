package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
	pkgAuth "github.com/jayeshsingh-11/creative-cascade/internal/pkg/auth"
	"github.com/jayeshsingh-11/creative-cascade/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Session, error)
}

// CatalogFacade exposes public catalog reads.
type CatalogFacade interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	ProductDetails(ctx context.Context, id int64) (*usecase.ProductDetails, error)
}

// CheckoutFacade covers order intake and payment settlement.
type CheckoutFacade interface {
	CreateCheckoutSession(ctx context.Context, buyerID int64, productIDs []int64) (*model.CheckoutSession, error)
	PaymentKeyID() string
	VerifyPayment(ctx context.Context, buyerID, orderID int64, providerOrderID, paymentID, signature string) (string, error)
	OrderStatus(ctx context.Context, buyerID, orderID int64) (bool, error)
	BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error)
}

// DownloadFacade covers entitlement-gated downloads and invoices.
type DownloadFacade interface {
	SecureDownload(ctx context.Context, buyerID, productID int64) (string, string, error)
	Library(ctx context.Context, buyerID int64) ([]usecase.LibraryItem, error)
	DownloadInvoice(ctx context.Context, buyerID, orderID int64) ([]byte, string, error)
}

// SellerFacade covers the seller console.
type SellerFacade interface {
	CreateListing(ctx context.Context, sellerID int64, in usecase.CreateListingInput) (*model.Product, error)
	DeleteListing(ctx context.Context, sellerID, productID int64) error
	SellerListings(ctx context.Context, sellerID int64) ([]model.Product, error)
	SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error)
	WalletBalance(ctx context.Context, sellerID int64) (decimal.Decimal, error)
}

// AdminFacade covers the admin console.
type AdminFacade interface {
	PlatformStats(ctx context.Context) (*model.PlatformStats, error)
	PendingProducts(ctx context.Context, limit int) ([]model.Product, error)
	ApproveProduct(ctx context.Context, productID int64, approved bool) error
}

// MarketplaceFacade aggregates the full set of operations used across
// handlers.
type MarketplaceFacade interface {
	AuthFacade
	CatalogFacade
	CheckoutFacade
	DownloadFacade
	SellerFacade
	AdminFacade
}
