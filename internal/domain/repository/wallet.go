package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// WalletRepository manages seller earnings balances.
type WalletRepository interface {
	// Credit atomically increments the seller's balance, creating the wallet
	// row on first sale.
	Credit(ctx context.Context, sellerID int64, amount decimal.Decimal) error
	Get(ctx context.Context, sellerID int64) (*model.SellerWallet, error)
}
