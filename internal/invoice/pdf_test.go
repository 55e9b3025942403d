package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleData(itemCount int) Data {
	items := make([]Item, 0, itemCount)
	subtotal := decimal.Zero
	for i := 0; i < itemCount; i++ {
		price := decimal.NewFromInt(int64(i%50 + 1))
		items = append(items, Item{
			Name:     fmt.Sprintf("Product %d", i+1),
			Category: "audio",
			Price:    price,
		})
		subtotal = subtotal.Add(price)
	}
	fee := decimal.NewFromInt(1)
	return Data{
		Number:          "CC-20250601-0042",
		Date:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		BuyerName:       "Buyer",
		BuyerEmail:      "buyer@example.com",
		OrderID:         1,
		PaymentID:       "pay_x",
		Items:           items,
		Subtotal:        subtotal,
		Fee:             fee,
		Total:           subtotal.Add(fee),
		AdminCommission: subtotal.Mul(decimal.NewFromFloat(0.10)).Round(2),
		SellerEarnings:  subtotal.Mul(decimal.NewFromFloat(0.90)).Round(2),
	}
}

func TestRenderPDFWithoutItems(t *testing.T) {
	pdfBytes, err := RenderPDF(sampleData(0))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestRenderPDFManyItemsPaginates(t *testing.T) {
	pdfBytes, err := RenderPDF(sampleData(100))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
	// A hundred rows cannot fit an A4 page; the document must span several.
	if pages := bytes.Count(pdfBytes, []byte("/Type /Page")); pages < 3 {
		t.Fatalf("expected a paginated document, got %d page markers", pages)
	}
}

func TestNumberFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		n := Number(now)
		if !strings.HasPrefix(n, "CC-20250601-") {
			t.Fatalf("unexpected prefix in %q", n)
		}
		if len(n) != len("CC-20250601-0000") {
			t.Fatalf("unexpected length in %q", n)
		}
	}
}

func TestRenderReceiptHTML(t *testing.T) {
	html, err := RenderReceiptHTML(sampleData(2))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"CC-20250601-0042", "Buyer", "Product 1", "Product 2"} {
		if !strings.Contains(html, want) {
			t.Fatalf("receipt missing %q", want)
		}
	}
}
