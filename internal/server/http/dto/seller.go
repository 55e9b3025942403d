package dto

import "github.com/jayeshsingh-11/creative-cascade/internal/domain/model"

// SellerStatsResponse is the seller dashboard summary.
type SellerStatsResponse struct {
	TotalProducts int64  `json:"totalProducts"`
	TotalOrders   int64  `json:"totalOrders"`
	PaidOrders    int64  `json:"paidOrders"`
	TotalRevenue  string `json:"totalRevenue"`
}

// NewSellerStatsResponse converts the domain model.
func NewSellerStatsResponse(s *model.SellerStats) SellerStatsResponse {
	return SellerStatsResponse{
		TotalProducts: s.TotalProducts,
		TotalOrders:   s.TotalOrders,
		PaidOrders:    s.PaidOrders,
		TotalRevenue:  s.TotalRevenue.StringFixed(2),
	}
}

// WalletResponse is the seller's earnings balance.
type WalletResponse struct {
	Balance string `json:"balance"`
}

// PlatformStatsResponse is the admin dashboard summary.
type PlatformStatsResponse struct {
	TotalUsers      int64  `json:"totalUsers"`
	TotalProducts   int64  `json:"totalProducts"`
	TotalOrders     int64  `json:"totalOrders"`
	PaidOrders      int64  `json:"paidOrders"`
	TotalRevenue    string `json:"totalRevenue"`
	CommissionTotal string `json:"commissionTotal"`
}

// NewPlatformStatsResponse converts the domain model.
func NewPlatformStatsResponse(s *model.PlatformStats) PlatformStatsResponse {
	return PlatformStatsResponse{
		TotalUsers:      s.TotalUsers,
		TotalProducts:   s.TotalProducts,
		TotalOrders:     s.TotalOrders,
		PaidOrders:      s.PaidOrders,
		TotalRevenue:    s.TotalRevenue.StringFixed(2),
		CommissionTotal: s.CommissionTotal.StringFixed(2),
	}
}

// ApprovalRequest toggles a product's moderation flag.
type ApprovalRequest struct {
	Approved bool `json:"approved"`
}
