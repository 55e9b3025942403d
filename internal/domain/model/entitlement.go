package model

import "time"

// Entitlement grants a buyer permanent download access to a product.
// Unique per (buyer, product); re-settlement never duplicates it.
type Entitlement struct {
	ID        int64
	BuyerID   int64
	ProductID int64
	CreatedAt time.Time
}
