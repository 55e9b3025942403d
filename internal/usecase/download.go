package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/objectstore"
	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
	"github.com/jayeshsingh-11/creative-cascade/internal/invoice"
)

// LibraryItem pairs an entitled product with when access was granted.
type LibraryItem struct {
	Product   model.Product
	GrantedAt time.Time
}

// DownloadUseCase gates product downloads behind entitlements and rebuilds
// invoice PDFs from stored snapshots.
type DownloadUseCase struct {
	entitlements repository.EntitlementRepository
	products     repository.ProductRepository
	orders       repository.OrderRepository
	invoices     repository.InvoiceRepository
	users        repository.UserRepository
	store        objectstore.Store
	filesBucket  string
	urlTTL       time.Duration

	renderPDF func(invoice.Data) ([]byte, error)
}

// NewDownloadUseCase constructs DownloadUseCase.
func NewDownloadUseCase(repos repository.Factory, store objectstore.Store, filesBucket string, urlTTL time.Duration) *DownloadUseCase {
	return &DownloadUseCase{
		entitlements: repos.Entitlements(),
		products:     repos.Products(),
		orders:       repos.Orders(),
		invoices:     repos.Invoices(),
		users:        repos.Users(),
		store:        store,
		filesBucket:  filesBucket,
		urlTTL:       urlTTL,
		renderPDF:    invoice.RenderPDF,
	}
}

// SecureDownload returns a short-lived presigned URL for the product's file
// together with the display filename. Buyers without an entitlement get
// ErrForbidden regardless of whether the product exists, so ownership cannot
// be probed.
func (u *DownloadUseCase) SecureDownload(ctx context.Context, buyerID, productID int64) (string, string, error) {
	ok, err := u.entitlements.Exists(ctx, buyerID, productID)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", domainErrors.ErrForbidden
	}

	file, err := u.products.FileForProduct(ctx, productID)
	if err != nil {
		return "", "", err
	}

	url, err := u.store.SignedURL(ctx, u.filesBucket, file.ObjectKey, u.urlTTL, file.Filename)
	if err != nil {
		return "", "", err
	}
	return url, file.Filename, nil
}

// Library lists the buyer's entitled products for the downloads page.
func (u *DownloadUseCase) Library(ctx context.Context, buyerID int64) ([]LibraryItem, error) {
	ents, err := u.entitlements.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	items := make([]LibraryItem, 0, len(ents))
	for _, ent := range ents {
		p, err := u.products.GetByID(ctx, ent.ProductID)
		if err != nil {
			// Delisted product; the entitlement survives but has nothing to
			// show.
			continue
		}
		items = append(items, LibraryItem{Product: *p, GrantedAt: ent.CreatedAt})
	}
	return items, nil
}

// DownloadInvoice regenerates the invoice PDF for one of the buyer's settled
// orders. Cross-account access fails with ErrForbidden.
func (u *DownloadUseCase) DownloadInvoice(ctx context.Context, buyerID, orderID int64) ([]byte, string, error) {
	order, lines, err := u.orders.GetForSettlement(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if order.BuyerID != buyerID {
		return nil, "", domainErrors.ErrForbidden
	}

	inv, err := u.invoices.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, "", err
	}

	buyer, err := u.users.GetByID(ctx, buyerID)
	if err != nil {
		return nil, "", err
	}

	data := invoice.Data{
		Number:          inv.Number,
		Date:            inv.CreatedAt,
		BuyerName:       buyer.Name,
		BuyerEmail:      buyer.Email,
		OrderID:         order.ID,
		PaymentID:       inv.PaymentID,
		Items:           invoiceItems(lines),
		Subtotal:        inv.Amount.Sub(inv.Fee),
		Fee:             inv.Fee,
		Total:           inv.Amount,
		AdminCommission: inv.AdminCommission,
		SellerEarnings:  inv.SellerEarnings,
	}

	pdfBytes, err := u.renderPDF(data)
	if err != nil {
		return nil, "", fmt.Errorf("render invoice pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s.pdf", inv.Number), nil
}
