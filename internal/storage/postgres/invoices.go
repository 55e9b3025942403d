package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

type invoiceRepository struct {
	storage *Storage
}

func (r *invoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	const query = `INSERT INTO invoices (order_id, number, amount, fee, admin_commission, seller_earnings, payment_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at`
	created := *inv
	err := r.storage.pool.QueryRow(ctx, query,
		inv.OrderID, inv.Number, inv.Amount, inv.Fee, inv.AdminCommission, inv.SellerEarnings, inv.PaymentID).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *invoiceRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Invoice, error) {
	const query = `SELECT id, order_id, number, amount, fee, admin_commission, seller_earnings, payment_id, created_at
                   FROM invoices WHERE order_id=$1`
	var inv model.Invoice
	err := r.storage.pool.QueryRow(ctx, query, orderID).
		Scan(&inv.ID, &inv.OrderID, &inv.Number, &inv.Amount, &inv.Fee, &inv.AdminCommission,
			&inv.SellerEarnings, &inv.PaymentID, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}
