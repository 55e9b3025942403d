package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a purchase created at checkout. Amount includes the fixed
// transaction fee. Payment and commission fields stay nil until settlement.
type Order struct {
	ID              int64
	BuyerID         int64
	Amount          decimal.Decimal
	IsPaid          bool
	ProviderOrderID *string
	PaymentID       *string
	AdminCommission *decimal.Decimal
	SellerEarnings  *decimal.Decimal
	CreatedAt       time.Time
}

// OrderLine ties one purchased product to its order, carrying the catalog
// data settlement needs (price and seller ownership).
type OrderLine struct {
	OrderID   int64
	ProductID int64
	Name      string
	Category  string
	Price     decimal.Decimal
	SellerID  int64
}

// CheckoutSession is handed back to the client to open the provider's
// payment UI. Amount is in minor currency units (paise).
type CheckoutSession struct {
	OrderID         int64
	ProviderOrderID string
	Amount          int64
	Currency        string
}
