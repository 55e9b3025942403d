package repository

import (
	"context"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// EntitlementRepository manages buyers' download entitlements.
type EntitlementRepository interface {
	// Grant upserts the (buyer, product) entitlement; granting twice is a no-op.
	Grant(ctx context.Context, buyerID, productID int64) error
	Exists(ctx context.Context, buyerID, productID int64) (bool, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]model.Entitlement, error)
}
