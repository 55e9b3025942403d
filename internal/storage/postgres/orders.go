package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) CreatePending(ctx context.Context, buyerID int64, amount decimal.Decimal, productIDs []int64) (*model.Order, error) {
	order := model.Order{BuyerID: buyerID, Amount: amount}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (buyer_id, amount) VALUES ($1, $2) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertOrder, buyerID, amount).Scan(&order.ID, &order.CreatedAt); err != nil {
			return err
		}

		const insertLine = `INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`
		for _, productID := range productIDs {
			if _, err := tx.Exec(ctx, insertLine, order.ID, productID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, buyer_id, amount, is_paid, provider_order_id, payment_id,
                          admin_commission, seller_earnings, created_at
                   FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetForSettlement(ctx context.Context, id int64) (*model.Order, []model.OrderLine, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	const linesQuery = `SELECT op.order_id, op.product_id, p.name, p.category, p.price, p.seller_id
                        FROM order_products op
                        JOIN products p ON p.id = op.product_id
                        WHERE op.order_id = $1
                        ORDER BY op.product_id`
	rows, err := r.storage.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var line model.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.Name, &line.Category, &line.Price, &line.SellerID); err != nil {
			return nil, nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return order, lines, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id int64) (bool, error) {
	// Conditional claim of the pending->paid transition. Side effects are
	// gated on a won claim so a retried verification cannot rerun them.
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET is_paid=TRUE WHERE id=$1 AND NOT is_paid`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *orderRepository) SetProviderOrderID(ctx context.Context, id int64, providerOrderID string) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE orders SET provider_order_id=$1 WHERE id=$2`, providerOrderID, id)
	return err
}

func (r *orderRepository) SetPaymentDetails(ctx context.Context, id int64, paymentID string, adminCommission, sellerEarnings decimal.Decimal) error {
	const query = `UPDATE orders SET payment_id=$1, admin_commission=$2, seller_earnings=$3 WHERE id=$4`
	_, err := r.storage.pool.Exec(ctx, query, paymentID, adminCommission, sellerEarnings, id)
	return err
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	const query = `SELECT id, buyer_id, amount, is_paid, provider_order_id, payment_id,
                          admin_commission, seller_earnings, created_at
                   FROM orders WHERE buyer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) DeleteStalePending(ctx context.Context, olderThan time.Time, limit int) (int64, error) {
	const query = `DELETE FROM orders
                   WHERE id IN (
                       SELECT id FROM orders
                       WHERE NOT is_paid AND created_at < $1
                       ORDER BY created_at
                       LIMIT $2
                   )`
	tag, err := r.storage.pool.Exec(ctx, query, olderThan, limit)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func (r *orderRepository) CountPaid(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE is_paid`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	order, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func scanOrderRow(row rowScanner) (*model.Order, error) {
	var (
		order           model.Order
		adminCommission decimal.NullDecimal
		sellerEarnings  decimal.NullDecimal
	)
	err := row.Scan(&order.ID, &order.BuyerID, &order.Amount, &order.IsPaid,
		&order.ProviderOrderID, &order.PaymentID, &adminCommission, &sellerEarnings, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	if adminCommission.Valid {
		order.AdminCommission = &adminCommission.Decimal
	}
	if sellerEarnings.Valid {
		order.SellerEarnings = &sellerEarnings.Decimal
	}
	return &order, nil
}
