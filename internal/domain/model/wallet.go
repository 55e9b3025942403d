package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerWallet holds a seller's accumulated earnings. Created lazily on the
// first credited sale.
type SellerWallet struct {
	SellerID  int64
	Balance   decimal.Decimal
	UpdatedAt time.Time
}
