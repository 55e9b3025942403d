package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// OrderRepository describes persistence operations for orders and their
// line items. Write paths used during settlement run with platform
// privilege, not the buyer's.
type OrderRepository interface {
	// CreatePending inserts the order row and one line per product in a
	// single transaction. The order starts unpaid.
	CreatePending(ctx context.Context, buyerID int64, amount decimal.Decimal, productIDs []int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// GetForSettlement resolves the order together with its line items and
	// seller ownership, bypassing buyer-scoped visibility.
	GetForSettlement(ctx context.Context, id int64) (*model.Order, []model.OrderLine, error)
	// MarkPaid claims the pending->paid transition. Returns false when the
	// order was already paid; settlement side effects must not rerun then.
	MarkPaid(ctx context.Context, id int64) (bool, error)
	SetProviderOrderID(ctx context.Context, id int64, providerOrderID string) error
	SetPaymentDetails(ctx context.Context, id int64, paymentID string, adminCommission, sellerEarnings decimal.Decimal) error
	ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error)
	// DeleteStalePending removes unpaid orders older than the cutoff along
	// with their line items. Returns the number of orders removed.
	DeleteStalePending(ctx context.Context, olderThan time.Time, limit int) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountPaid(ctx context.Context) (int64, error)
}
