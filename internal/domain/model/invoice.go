package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a denormalized snapshot of a settled order, kept so the PDF can
// be regenerated later without touching live catalog data.
type Invoice struct {
	ID              int64
	OrderID         int64
	Number          string
	Amount          decimal.Decimal
	Fee             decimal.Decimal
	AdminCommission decimal.Decimal
	SellerEarnings  decimal.Decimal
	PaymentID       string
	CreatedAt       time.Time
}
