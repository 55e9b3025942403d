package repository

import (
	"context"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// InvoiceRepository stores settled-order invoice snapshots.
type InvoiceRepository interface {
	// Create inserts the invoice; a duplicate number fails with
	// ErrAlreadyExists so callers can regenerate the suffix and retry.
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Invoice, error)
}
