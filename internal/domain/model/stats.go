package model

import "github.com/shopspring/decimal"

// SellerStats aggregates a seller's dashboard numbers.
type SellerStats struct {
	TotalProducts int64
	TotalOrders   int64
	PaidOrders    int64
	TotalRevenue  decimal.Decimal
}

// PlatformStats aggregates the admin dashboard numbers.
type PlatformStats struct {
	TotalUsers      int64
	TotalProducts   int64
	TotalOrders     int64
	PaidOrders      int64
	TotalRevenue    decimal.Decimal
	CommissionTotal decimal.Decimal
}
