package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/mailer"
	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/razorpay"
	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
	"github.com/jayeshsingh-11/creative-cascade/internal/invoice"
)

const invoiceNumberAttempts = 3

var (
	commissionRate = decimal.NewFromFloat(0.10)
	earningsRate   = decimal.NewFromFloat(0.90)
)

// SettlementUseCase verifies provider payment signatures and settles paid
// orders: wallet credits, entitlements, invoice snapshot, receipt email.
type SettlementUseCase struct {
	orders       repository.OrderRepository
	wallets      repository.WalletRepository
	entitlements repository.EntitlementRepository
	invoices     repository.InvoiceRepository
	users        repository.UserRepository
	gateway      razorpay.Gateway
	mail         mailer.Mailer
	logger       *slog.Logger

	number    invoice.NumberGenerator
	renderPDF func(invoice.Data) ([]byte, error)
	now       func() time.Time
}

// NewSettlementUseCase constructs SettlementUseCase.
func NewSettlementUseCase(repos repository.Factory, gateway razorpay.Gateway, mail mailer.Mailer, logger *slog.Logger) *SettlementUseCase {
	return &SettlementUseCase{
		orders:       repos.Orders(),
		wallets:      repos.Wallets(),
		entitlements: repos.Entitlements(),
		invoices:     repos.Invoices(),
		users:        repos.Users(),
		gateway:      gateway,
		mail:         mail,
		logger:       logger,
		number:       invoice.Number,
		renderPDF:    invoice.RenderPDF,
		now:          time.Now,
	}
}

// VerifyPayment is the settlement entry point. It authenticates the
// provider's signature, claims the pending->paid transition exactly once,
// then runs the side effects. Every step after the claim is best effort:
// a failure is logged and the remaining steps still run, so the response
// stays successful once the order is marked paid.
//
// The returned string is the invoice number, empty when the invoice step
// did not produce one.
func (u *SettlementUseCase) VerifyPayment(ctx context.Context, buyerID, orderID int64, providerOrderID, paymentID, signature string) (string, error) {
	if !u.gateway.VerifySignature(providerOrderID, paymentID, signature) {
		return "", domainErrors.ErrInvalidSignature
	}

	order, lines, err := u.orders.GetForSettlement(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.BuyerID != buyerID {
		return "", domainErrors.ErrForbidden
	}

	claimed, err := u.orders.MarkPaid(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("mark order paid: %w", err)
	}
	if !claimed {
		// Duplicate verification (double submit, webhook replay). The order
		// is already settled; report success without rerunning side effects.
		if inv, invErr := u.invoices.GetByOrder(ctx, orderID); invErr == nil {
			return inv.Number, nil
		}
		return "", nil
	}

	productTotal := decimal.Zero
	for _, line := range lines {
		productTotal = productTotal.Add(line.Price)
	}
	adminCommission := productTotal.Mul(commissionRate).Round(2)
	sellerEarnings := productTotal.Mul(earningsRate).Round(2)

	u.step(orderID,"payment details", func() error {
		return u.orders.SetPaymentDetails(ctx, orderID, paymentID, adminCommission, sellerEarnings)
	})

	bySeller := make(map[int64]decimal.Decimal)
	sellerOrder := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := bySeller[line.SellerID]; !ok {
			sellerOrder = append(sellerOrder, line.SellerID)
		}
		bySeller[line.SellerID] = bySeller[line.SellerID].Add(line.Price)
	}
	for _, sellerID := range sellerOrder {
		share := bySeller[sellerID].Mul(earningsRate).Round(2)
		u.step(orderID,"wallet credit", func() error {
			return u.wallets.Credit(ctx, sellerID, share)
		})
	}

	for _, line := range lines {
		u.step(orderID,"entitlement grant", func() error {
			return u.entitlements.Grant(ctx, order.BuyerID, line.ProductID)
		})
	}

	inv := u.persistInvoice(ctx, order, paymentID, adminCommission, sellerEarnings)

	u.step(orderID,"receipt email", func() error {
		return u.sendReceipt(ctx, order, lines, inv, productTotal)
	})

	return inv.Number, nil
}

// persistInvoice records the invoice snapshot, retrying with a fresh number
// when the random suffix collides. The minted number is returned even when
// persistence ultimately fails, so the buyer still sees a reference.
func (u *SettlementUseCase) persistInvoice(ctx context.Context, order *model.Order, paymentID string, adminCommission, sellerEarnings decimal.Decimal) *model.Invoice {
	inv := &model.Invoice{
		OrderID:         order.ID,
		Amount:          order.Amount,
		Fee:             TransactionFee,
		AdminCommission: adminCommission,
		SellerEarnings:  sellerEarnings,
		PaymentID:       paymentID,
		CreatedAt:       u.now(),
	}
	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		inv.Number = u.number(u.now())
		created, err := u.invoices.Create(ctx, inv)
		if err == nil {
			return created
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			u.logger.Warn("settlement step failed",
				slog.String("step", "invoice"),
				slog.Int64("order_id", order.ID),
				slog.String("error", err.Error()))
			return inv
		}
	}
	u.logger.Warn("settlement step failed",
		slog.String("step", "invoice"),
		slog.Int64("order_id", order.ID),
		slog.String("error", "invoice number conflicts exhausted retries"))
	return inv
}

func (u *SettlementUseCase) sendReceipt(ctx context.Context, order *model.Order, lines []model.OrderLine, inv *model.Invoice, productTotal decimal.Decimal) error {
	buyer, err := u.users.GetByID(ctx, order.BuyerID)
	if err != nil {
		return fmt.Errorf("resolve buyer: %w", err)
	}

	data := invoice.Data{
		Number:          inv.Number,
		Date:            inv.CreatedAt,
		BuyerName:       buyer.Name,
		BuyerEmail:      buyer.Email,
		OrderID:         order.ID,
		PaymentID:       inv.PaymentID,
		Items:           invoiceItems(lines),
		Subtotal:        productTotal,
		Fee:             inv.Fee,
		Total:           order.Amount,
		AdminCommission: inv.AdminCommission,
		SellerEarnings:  inv.SellerEarnings,
	}

	html, err := invoice.RenderReceiptHTML(data)
	if err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}

	msg := mailer.Message{
		To:      buyer.Email,
		ToName:  buyer.Name,
		Subject: fmt.Sprintf("Your Creative Cascade receipt %s", inv.Number),
		HTML:    html,
	}
	// A broken PDF must not block the receipt; send without the attachment.
	if pdfBytes, pdfErr := u.renderPDF(data); pdfErr != nil {
		u.logger.Warn("invoice pdf render failed",
			slog.Int64("order_id", order.ID), slog.String("error", pdfErr.Error()))
	} else {
		msg.Attachment = &mailer.Attachment{
			Filename:    fmt.Sprintf("%s.pdf", inv.Number),
			ContentType: "application/pdf",
			Content:     pdfBytes,
		}
	}

	return u.mail.Send(msg)
}

func (u *SettlementUseCase) step(orderID int64, name string, fn func() error) {
	if err := fn(); err != nil {
		u.logger.Warn("settlement step failed",
			slog.String("step", name),
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()))
	}
}

func invoiceItems(lines []model.OrderLine) []invoice.Item {
	items := make([]invoice.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, invoice.Item{Name: line.Name, Category: line.Category, Price: line.Price})
	}
	return items
}
