package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/objectstore"
	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/razorpay"
	"github.com/jayeshsingh-11/creative-cascade/internal/config"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewSettlementUseCase,
	NewReportingUseCase,
	newCatalogUseCase,
	newCheckoutUseCase,
	newDownloadUseCase,
)

func newCatalogUseCase(products repository.ProductRepository, store objectstore.Store, cfg *config.Config) *CatalogUseCase {
	return NewCatalogUseCase(products, store, cfg.FilesBucket, cfg.MediaBucket)
}

func newCheckoutUseCase(products repository.ProductRepository, orders repository.OrderRepository, gateway razorpay.Gateway, cfg *config.Config, logger *slog.Logger) *CheckoutUseCase {
	return NewCheckoutUseCase(products, orders, gateway, cfg.Currency, logger)
}

func newDownloadUseCase(repos repository.Factory, store objectstore.Store, cfg *config.Config) *DownloadUseCase {
	return NewDownloadUseCase(repos, store, cfg.FilesBucket, cfg.DownloadURLTTL)
}
