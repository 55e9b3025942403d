package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

type reportingRepository struct {
	storage *Storage
}

func (r *reportingRepository) SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error) {
	stats := &model.SellerStats{TotalRevenue: decimal.Zero}

	var err error
	if stats.TotalProducts, err = (&productRepository{storage: r.storage}).CountBySeller(ctx, sellerID); err != nil {
		return nil, err
	}

	// Revenue counts the seller's line items inside paid orders; order counts
	// deduplicate orders containing several of the seller's products.
	const query = `SELECT COUNT(DISTINCT o.id),
                          COUNT(DISTINCT o.id) FILTER (WHERE o.is_paid),
                          COALESCE(SUM(p.price) FILTER (WHERE o.is_paid), 0)
                   FROM order_products op
                   JOIN products p ON p.id = op.product_id
                   JOIN orders o ON o.id = op.order_id
                   WHERE p.seller_id = $1`
	var revenue decimal.Decimal
	if err := r.storage.pool.QueryRow(ctx, query, sellerID).
		Scan(&stats.TotalOrders, &stats.PaidOrders, &revenue); err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue
	return stats, nil
}

func (r *reportingRepository) PlatformStats(ctx context.Context) (*model.PlatformStats, error) {
	stats := &model.PlatformStats{}

	var err error
	if stats.TotalUsers, err = (&userRepository{storage: r.storage}).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = (&productRepository{storage: r.storage}).Count(ctx); err != nil {
		return nil, err
	}

	const query = `SELECT COUNT(*),
                          COUNT(*) FILTER (WHERE is_paid),
                          COALESCE(SUM(amount) FILTER (WHERE is_paid), 0),
                          COALESCE(SUM(admin_commission) FILTER (WHERE is_paid), 0)
                   FROM orders`
	var revenue, commission decimal.Decimal
	if err := r.storage.pool.QueryRow(ctx, query).
		Scan(&stats.TotalOrders, &stats.PaidOrders, &revenue, &commission); err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue
	stats.CommissionTotal = commission
	return stats, nil
}
