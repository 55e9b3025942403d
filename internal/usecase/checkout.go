package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/razorpay"
	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

// TransactionFee is the fixed per-order fee added on top of product prices.
var TransactionFee = decimal.NewFromInt(1)

var minorUnits = decimal.NewFromInt(100)

// CheckoutUseCase turns a cart into a pending order plus a provider-side
// payment order.
type CheckoutUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	gateway  razorpay.Gateway
	currency string
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(products repository.ProductRepository, orders repository.OrderRepository, gateway razorpay.Gateway, currency string, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{products: products, orders: orders, gateway: gateway, currency: currency, logger: logger}
}

// CreateSession resolves the cart, creates a pending order with its line
// items, and registers a provider order for the total (products + fee).
//
// A provider failure leaves the pending order row in place and surfaces
// ErrPaymentProvider; the caller may retry, which creates a fresh session.
// Stale pending orders are swept by the reaper.
func (u *CheckoutUseCase) CreateSession(ctx context.Context, buyerID int64, productIDs []int64) (*model.CheckoutSession, error) {
	if len(productIDs) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	products, err := u.products.ListByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	total := TransactionFee
	resolved := make([]int64, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		resolved = append(resolved, p.ID)
	}

	order, err := u.orders.CreatePending(ctx, buyerID, total, resolved)
	if err != nil {
		return nil, err
	}

	providerOrder, err := u.gateway.CreateOrder(ctx,
		total.Mul(minorUnits).IntPart(),
		u.currency,
		fmt.Sprintf("order_rcpt_%d", order.ID),
		map[string]any{"userId": buyerID, "orderId": order.ID},
	)
	if err != nil {
		u.logger.Error("provider order creation failed",
			slog.Int64("order_id", order.ID), slog.String("error", err.Error()))
		return nil, domainErrors.ErrPaymentProvider
	}

	if err := u.orders.SetProviderOrderID(ctx, order.ID, providerOrder.ID); err != nil {
		u.logger.Warn("persist provider order id failed",
			slog.Int64("order_id", order.ID), slog.String("error", err.Error()))
	}

	return &model.CheckoutSession{
		OrderID:         order.ID,
		ProviderOrderID: providerOrder.ID,
		Amount:          providerOrder.Amount,
		Currency:        providerOrder.Currency,
	}, nil
}

// OrderStatus reports whether the buyer's order is paid (thank-you page poll).
func (u *CheckoutUseCase) OrderStatus(ctx context.Context, buyerID, orderID int64) (bool, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order.BuyerID != buyerID {
		return false, domainErrors.ErrForbidden
	}
	return order.IsPaid, nil
}

// BuyerOrders returns the buyer's order history, newest first.
func (u *CheckoutUseCase) BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return u.orders.ListByBuyer(ctx, buyerID)
}
