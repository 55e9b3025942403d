package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

type walletRepository struct {
	storage *Storage
}

func (r *walletRepository) Credit(ctx context.Context, sellerID int64, amount decimal.Decimal) error {
	// Single atomic upsert: no read-then-write window for concurrent
	// settlements crediting the same seller.
	const query = `INSERT INTO seller_wallets (seller_id, balance, updated_at)
                   VALUES ($1, $2, NOW())
                   ON CONFLICT (seller_id) DO UPDATE
                   SET balance = seller_wallets.balance + EXCLUDED.balance,
                       updated_at = NOW()`
	_, err := r.storage.pool.Exec(ctx, query, sellerID, amount)
	return err
}

func (r *walletRepository) Get(ctx context.Context, sellerID int64) (*model.SellerWallet, error) {
	const query = `SELECT seller_id, balance, updated_at FROM seller_wallets WHERE seller_id=$1`
	var w model.SellerWallet
	err := r.storage.pool.QueryRow(ctx, query, sellerID).Scan(&w.SellerID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}
