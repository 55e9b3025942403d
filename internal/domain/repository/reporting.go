package repository

import (
	"context"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// ReportingRepository serves read-side dashboard aggregation.
type ReportingRepository interface {
	SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error)
	PlatformStats(ctx context.Context) (*model.PlatformStats, error)
}
