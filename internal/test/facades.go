package test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
	pkgAuth "github.com/jayeshsingh-11/creative-cascade/internal/pkg/auth"
	"github.com/jayeshsingh-11/creative-cascade/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, model.Role) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (pkgAuth.Session, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password, role)
	}
	return &model.User{ID: 1, Email: email, Name: name, Role: role}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleBuyer}, "token", nil
}

// ParseToken returns the stored session for authenticated requests.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Session{UserID: 1, Role: model.RoleBuyer}, nil
}

// CatalogFacadeStub simulates catalog reads.
type CatalogFacadeStub struct {
	ListFn    func(context.Context, repository.ProductFilter) ([]model.Product, int64, error)
	SearchFn  func(context.Context, string) ([]model.Product, error)
	DetailsFn func(context.Context, int64) (*usecase.ProductDetails, error)
}

// ListProducts delegates to the override or returns an empty page.
func (s CatalogFacadeStub) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, 0, nil
}

// SearchProducts delegates to the override or returns no matches.
func (s CatalogFacadeStub) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return nil, nil
}

// ProductDetails delegates to the override or returns a placeholder.
func (s CatalogFacadeStub) ProductDetails(ctx context.Context, id int64) (*usecase.ProductDetails, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, id)
	}
	return &usecase.ProductDetails{Product: model.Product{ID: id}}, nil
}

// CheckoutFacadeStub simulates checkout and settlement.
type CheckoutFacadeStub struct {
	CreateFn func(context.Context, int64, []int64) (*model.CheckoutSession, error)
	VerifyFn func(context.Context, int64, int64, string, string, string) (string, error)
	StatusFn func(context.Context, int64, int64) (bool, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	Key      string
}

// CreateCheckoutSession delegates to the override or returns a fixed session.
func (s CheckoutFacadeStub) CreateCheckoutSession(ctx context.Context, buyerID int64, productIDs []int64) (*model.CheckoutSession, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, buyerID, productIDs)
	}
	return &model.CheckoutSession{OrderID: 1, ProviderOrderID: "order_stub_1", Amount: 100, Currency: "INR"}, nil
}

// VerifyPayment delegates to the override or succeeds.
func (s CheckoutFacadeStub) VerifyPayment(ctx context.Context, buyerID, orderID int64, providerOrderID, paymentID, signature string) (string, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, buyerID, orderID, providerOrderID, paymentID, signature)
	}
	return "CC-20250101-0001", nil
}

// OrderStatus delegates to the override or reports unpaid.
func (s CheckoutFacadeStub) OrderStatus(ctx context.Context, buyerID, orderID int64) (bool, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, buyerID, orderID)
	}
	return false, nil
}

// BuyerOrders delegates to the override or returns no history.
func (s CheckoutFacadeStub) BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, buyerID)
	}
	return nil, nil
}

// PaymentKeyID returns the configured provider key.
func (s CheckoutFacadeStub) PaymentKeyID() string {
	if s.Key != "" {
		return s.Key
	}
	return "rzp_test_stub"
}

// DownloadFacadeStub simulates entitlement-gated downloads.
type DownloadFacadeStub struct {
	DownloadFn func(context.Context, int64, int64) (string, string, error)
	LibraryFn  func(context.Context, int64) ([]usecase.LibraryItem, error)
	InvoiceFn  func(context.Context, int64, int64) ([]byte, string, error)
}

// SecureDownload delegates to the override or returns a fixed URL.
func (s DownloadFacadeStub) SecureDownload(ctx context.Context, buyerID, productID int64) (string, string, error) {
	if s.DownloadFn != nil {
		return s.DownloadFn(ctx, buyerID, productID)
	}
	return "https://store.test/files/key?sig=1", "asset.zip", nil
}

// Library delegates to the override or returns an empty library.
func (s DownloadFacadeStub) Library(ctx context.Context, buyerID int64) ([]usecase.LibraryItem, error) {
	if s.LibraryFn != nil {
		return s.LibraryFn(ctx, buyerID)
	}
	return nil, nil
}

// DownloadInvoice delegates to the override or returns placeholder bytes.
func (s DownloadFacadeStub) DownloadInvoice(ctx context.Context, buyerID, orderID int64) ([]byte, string, error) {
	if s.InvoiceFn != nil {
		return s.InvoiceFn(ctx, buyerID, orderID)
	}
	return []byte("%PDF-stub"), "CC-20250101-0001.pdf", nil
}

// SellerFacadeStub simulates the seller console.
type SellerFacadeStub struct {
	CreateListingFn func(context.Context, int64, usecase.CreateListingInput) (*model.Product, error)
	DeleteFn        func(context.Context, int64, int64) error
	ListingsFn      func(context.Context, int64) ([]model.Product, error)
	StatsFn         func(context.Context, int64) (*model.SellerStats, error)
	WalletFn        func(context.Context, int64) (decimal.Decimal, error)
}

// CreateListing delegates to the override or echoes the submission.
func (s SellerFacadeStub) CreateListing(ctx context.Context, sellerID int64, in usecase.CreateListingInput) (*model.Product, error) {
	if s.CreateListingFn != nil {
		return s.CreateListingFn(ctx, sellerID, in)
	}
	return &model.Product{ID: 1, SellerID: sellerID, Name: in.Name, Category: in.Category, Price: in.Price}, nil
}

// DeleteListing delegates to the override or succeeds.
func (s SellerFacadeStub) DeleteListing(ctx context.Context, sellerID, productID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, sellerID, productID)
	}
	return nil
}

// SellerListings delegates to the override or returns no products.
func (s SellerFacadeStub) SellerListings(ctx context.Context, sellerID int64) ([]model.Product, error) {
	if s.ListingsFn != nil {
		return s.ListingsFn(ctx, sellerID)
	}
	return nil, nil
}

// SellerStats delegates to the override or returns zeros.
func (s SellerFacadeStub) SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, sellerID)
	}
	return &model.SellerStats{}, nil
}

// WalletBalance delegates to the override or returns zero.
func (s SellerFacadeStub) WalletBalance(ctx context.Context, sellerID int64) (decimal.Decimal, error) {
	if s.WalletFn != nil {
		return s.WalletFn(ctx, sellerID)
	}
	return decimal.Zero, nil
}

// AdminFacadeStub simulates the admin console.
type AdminFacadeStub struct {
	StatsFn   func(context.Context) (*model.PlatformStats, error)
	PendingFn func(context.Context, int) ([]model.Product, error)
	ApproveFn func(context.Context, int64, bool) error
}

// PlatformStats delegates to the override or returns zeros.
func (s AdminFacadeStub) PlatformStats(ctx context.Context) (*model.PlatformStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.PlatformStats{}, nil
}

// PendingProducts delegates to the override or returns no products.
func (s AdminFacadeStub) PendingProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	return nil, nil
}

// ApproveProduct delegates to the override or succeeds.
func (s AdminFacadeStub) ApproveProduct(ctx context.Context, productID int64, approved bool) error {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, productID, approved)
	}
	return nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CheckoutFacadeStub
	DownloadFacadeStub
	SellerFacadeStub
	AdminFacadeStub
}

// WorkerFacadeStub counts reaper sweeps for worker tests.
type WorkerFacadeStub struct {
	ReapFn func(context.Context, time.Time, int) (int64, error)
	Calls  atomic.Int64
}

// ReapStaleOrders records the sweep and delegates to the override.
func (s *WorkerFacadeStub) ReapStaleOrders(ctx context.Context, olderThan time.Time, limit int) (int64, error) {
	s.Calls.Add(1)
	if s.ReapFn != nil {
		return s.ReapFn(ctx, olderThan, limit)
	}
	return 0, nil
}
