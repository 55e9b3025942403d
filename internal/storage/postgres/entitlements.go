package postgres

import (
	"context"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

type entitlementRepository struct {
	storage *Storage
}

func (r *entitlementRepository) Grant(ctx context.Context, buyerID, productID int64) error {
	const query = `INSERT INTO purchased_products (buyer_id, product_id)
                   VALUES ($1, $2)
                   ON CONFLICT (buyer_id, product_id) DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, buyerID, productID)
	return err
}

func (r *entitlementRepository) Exists(ctx context.Context, buyerID, productID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM purchased_products WHERE buyer_id=$1 AND product_id=$2)`
	var exists bool
	err := r.storage.pool.QueryRow(ctx, query, buyerID, productID).Scan(&exists)
	return exists, err
}

func (r *entitlementRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Entitlement, error) {
	const query = `SELECT id, buyer_id, product_id, created_at
                   FROM purchased_products WHERE buyer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Entitlement
	for rows.Next() {
		var e model.Entitlement
		if err := rows.Scan(&e.ID, &e.BuyerID, &e.ProductID, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
