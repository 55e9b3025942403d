package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a downloadable digital good listed by a seller.
type Product struct {
	ID          int64
	SellerID    int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Approved    bool
	CreatedAt   time.Time
}

// ProductFile is the stored asset a buyer downloads after purchase.
type ProductFile struct {
	ID        int64
	ProductID int64
	ObjectKey string
	Filename  string
	SizeBytes int64
	CreatedAt time.Time
}

// ProductImage is a gallery image reference stored in the media bucket.
type ProductImage struct {
	ID        int64
	ProductID int64
	ObjectKey string
	Position  int
}
