package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/razorpay"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
	pkgAuth "github.com/jayeshsingh-11/creative-cascade/internal/pkg/auth"
	"github.com/jayeshsingh-11/creative-cascade/internal/usecase"
)

// MarketplaceFacade is the single application surface the HTTP handlers and
// the reaper depend on.
type MarketplaceFacade struct {
	auth       *usecase.AuthUseCase
	catalog    *usecase.CatalogUseCase
	checkout   *usecase.CheckoutUseCase
	settlement *usecase.SettlementUseCase
	downloads  *usecase.DownloadUseCase
	reporting  *usecase.ReportingUseCase
	orders     repository.OrderRepository
	gateway    razorpay.Gateway
}

// NewMarketplaceFacade constructs the facade from the use cases.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	checkout *usecase.CheckoutUseCase,
	settlement *usecase.SettlementUseCase,
	downloads *usecase.DownloadUseCase,
	reporting *usecase.ReportingUseCase,
	repos repository.Factory,
	gateway razorpay.Gateway,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:       auth,
		catalog:    catalog,
		checkout:   checkout,
		settlement: settlement,
		downloads:  downloads,
		reporting:  reporting,
		orders:     repos.Orders(),
		gateway:    gateway,
	}
}

// PaymentKeyID exposes the provider's public key for the payment widget.
func (f *MarketplaceFacade) PaymentKeyID() string {
	return f.gateway.KeyID()
}

func (f *MarketplaceFacade) Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error) {
	return f.auth.Register(ctx, email, name, password, role)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketplaceFacade) ParseToken(token string) (pkgAuth.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketplaceFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *MarketplaceFacade) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return f.catalog.List(ctx, filter)
}

func (f *MarketplaceFacade) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	return f.catalog.Search(ctx, query)
}

func (f *MarketplaceFacade) ProductDetails(ctx context.Context, id int64) (*usecase.ProductDetails, error) {
	return f.catalog.Get(ctx, id)
}

func (f *MarketplaceFacade) CreateListing(ctx context.Context, sellerID int64, in usecase.CreateListingInput) (*model.Product, error) {
	return f.catalog.CreateListing(ctx, sellerID, in)
}

func (f *MarketplaceFacade) DeleteListing(ctx context.Context, sellerID, productID int64) error {
	return f.catalog.DeleteListing(ctx, sellerID, productID)
}

func (f *MarketplaceFacade) ApproveProduct(ctx context.Context, productID int64, approved bool) error {
	return f.catalog.SetApproved(ctx, productID, approved)
}

func (f *MarketplaceFacade) CreateCheckoutSession(ctx context.Context, buyerID int64, productIDs []int64) (*model.CheckoutSession, error) {
	return f.checkout.CreateSession(ctx, buyerID, productIDs)
}

func (f *MarketplaceFacade) VerifyPayment(ctx context.Context, buyerID, orderID int64, providerOrderID, paymentID, signature string) (string, error) {
	return f.settlement.VerifyPayment(ctx, buyerID, orderID, providerOrderID, paymentID, signature)
}

func (f *MarketplaceFacade) OrderStatus(ctx context.Context, buyerID, orderID int64) (bool, error) {
	return f.checkout.OrderStatus(ctx, buyerID, orderID)
}

func (f *MarketplaceFacade) BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return f.checkout.BuyerOrders(ctx, buyerID)
}

func (f *MarketplaceFacade) SecureDownload(ctx context.Context, buyerID, productID int64) (string, string, error) {
	return f.downloads.SecureDownload(ctx, buyerID, productID)
}

func (f *MarketplaceFacade) Library(ctx context.Context, buyerID int64) ([]usecase.LibraryItem, error) {
	return f.downloads.Library(ctx, buyerID)
}

func (f *MarketplaceFacade) DownloadInvoice(ctx context.Context, buyerID, orderID int64) ([]byte, string, error) {
	return f.downloads.DownloadInvoice(ctx, buyerID, orderID)
}

func (f *MarketplaceFacade) SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error) {
	return f.reporting.SellerStats(ctx, sellerID)
}

func (f *MarketplaceFacade) WalletBalance(ctx context.Context, sellerID int64) (decimal.Decimal, error) {
	return f.reporting.WalletBalance(ctx, sellerID)
}

func (f *MarketplaceFacade) SellerListings(ctx context.Context, sellerID int64) ([]model.Product, error) {
	return f.reporting.SellerListings(ctx, sellerID)
}

func (f *MarketplaceFacade) PlatformStats(ctx context.Context) (*model.PlatformStats, error) {
	return f.reporting.PlatformStats(ctx)
}

func (f *MarketplaceFacade) PendingProducts(ctx context.Context, limit int) ([]model.Product, error) {
	return f.reporting.PendingProducts(ctx, limit)
}

func (f *MarketplaceFacade) ReapStaleOrders(ctx context.Context, olderThan time.Time, limit int) (int64, error) {
	return f.orders.DeleteStalePending(ctx, olderThan, limit)
}
