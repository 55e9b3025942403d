package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Item is one invoiced line.
type Item struct {
	Name     string
	Category string
	Price    decimal.Decimal
}

// Data carries everything the PDF needs; rendering performs no I/O.
type Data struct {
	Number          string
	Date            time.Time
	BuyerName       string
	BuyerEmail      string
	OrderID         int64
	PaymentID       string
	Items           []Item
	Subtotal        decimal.Decimal
	Fee             decimal.Decimal
	Total           decimal.Decimal
	AdminCommission decimal.Decimal
	SellerEarnings  decimal.Decimal
}

const (
	pageMargin    = 15.0
	rowHeight     = 9.0
	footerReserve = 45.0
)

// RenderPDF produces the invoice document: branded header, bill-to block,
// metadata, itemized table, totals, commission split, footer. The table
// breaks to a new page (repeating its header row) before a row would run
// into the footer area.
func RenderPDF(data Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", data.Number), true)
	pdf.SetAuthor("Creative Cascade", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	renderHeader(pdf, data, contentWidth)
	y := renderParties(pdf, data, pageWidth)
	y = renderTable(pdf, data, y, pageWidth, pageHeight, contentWidth)
	y = renderTotals(pdf, data, y, pageWidth, pageHeight, contentWidth)
	renderSplit(pdf, data, y, pageHeight, contentWidth)
	renderFooter(pdf, pageHeight, contentWidth)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeader(pdf *fpdf.Fpdf, data Data, contentWidth float64) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(17, 24, 39)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(40, 10, "Creative", "", 0, "L", false, 0, "")
	pdf.SetTextColor(99, 102, 241)
	pdf.CellFormat(40, 10, "Cascade", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(pageMargin, pageMargin+11)
	pdf.CellFormat(80, 5, "Your Digital Marketplace", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(17, 24, 39)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(contentWidth, 10, "INVOICE", "", 0, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(99, 102, 241)
	pdf.SetXY(pageMargin, pageMargin+11)
	pdf.CellFormat(contentWidth, 5, data.Number, "", 0, "R", false, 0, "")

	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.3)
	pdf.Line(pageMargin, pageMargin+20, pageMargin+contentWidth, pageMargin+20)
}

func renderParties(pdf *fpdf.Fpdf, data Data, pageWidth float64) float64 {
	y := pageMargin + 27

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(pageMargin, y)
	pdf.CellFormat(80, 4, "BILL TO", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(17, 24, 39)
	pdf.SetXY(pageMargin, y+5)
	pdf.CellFormat(100, 5, data.BuyerName, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(pageMargin, y+11)
	pdf.CellFormat(100, 5, data.BuyerEmail, "", 0, "L", false, 0, "")

	metaX := pageWidth/2 + 10
	metaWidth := pageWidth - pageMargin - metaX
	meta := []struct{ label, value string }{
		{"INVOICE DATE", data.Date.Format("02 Jan 2006")},
		{"PAYMENT ID", data.PaymentID},
		{"ORDER ID", fmt.Sprintf("%d", data.OrderID)},
	}
	my := y
	for _, entry := range meta {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetTextColor(107, 114, 128)
		pdf.SetXY(metaX, my)
		pdf.CellFormat(metaWidth, 3.5, entry.label, "", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(17, 24, 39)
		pdf.SetXY(metaX, my+4)
		pdf.CellFormat(metaWidth, 3.5, entry.value, "", 0, "R", false, 0, "")
		my += 9.5
	}

	return y + 32
}

func tableHeader(pdf *fpdf.Fpdf, y, contentWidth float64) float64 {
	pdf.SetFillColor(17, 24, 39)
	pdf.Rect(pageMargin, y, contentWidth, rowHeight, "F")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(pageMargin+2, y)
	pdf.CellFormat(10, rowHeight, "#", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, rowHeight, "PRODUCT", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, rowHeight, "CATEGORY", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth-139, rowHeight, "PRICE", "", 0, "R", false, 0, "")

	return y + rowHeight
}

func renderTable(pdf *fpdf.Fpdf, data Data, y, pageWidth, pageHeight, contentWidth float64) float64 {
	y = tableHeader(pdf, y, contentWidth)

	for i, item := range data.Items {
		if y+rowHeight > pageHeight-footerReserve {
			pdf.AddPage()
			y = tableHeader(pdf, pageMargin, contentWidth)
		}

		if i%2 == 0 {
			pdf.SetFillColor(243, 244, 246)
			pdf.Rect(pageMargin, y, contentWidth, rowHeight, "F")
		}

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(17, 24, 39)
		pdf.SetXY(pageMargin+2, y)
		pdf.CellFormat(10, rowHeight, fmt.Sprintf("%d", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(85, rowHeight, item.Name, "", 0, "L", false, 0, "")
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(40, rowHeight, item.Category, "", 0, "L", false, 0, "")
		pdf.SetTextColor(17, 24, 39)
		pdf.CellFormat(contentWidth-139, rowHeight, "Rs "+item.Price.StringFixed(2), "", 0, "R", false, 0, "")

		y += rowHeight
	}

	return y + 6
}

func renderTotals(pdf *fpdf.Fpdf, data Data, y, pageWidth, pageHeight, contentWidth float64) float64 {
	if y+40 > pageHeight-footerReserve {
		pdf.AddPage()
		y = pageMargin
	}

	labelX := pageWidth/2 + 20
	valueWidth := pageWidth - pageMargin - labelX - 40

	rows := []struct {
		label, value string
	}{
		{"Subtotal", "Rs " + data.Subtotal.StringFixed(2)},
		{"Transaction Fee", "Rs " + data.Fee.StringFixed(2)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(107, 114, 128)
		pdf.SetXY(labelX, y)
		pdf.CellFormat(40, 5, row.label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(17, 24, 39)
		pdf.CellFormat(valueWidth+40, 5, row.value, "", 0, "R", false, 0, "")
		y += 7
	}

	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(labelX, y, pageWidth-pageMargin, y)
	y += 3

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(17, 24, 39)
	pdf.SetXY(labelX, y)
	pdf.CellFormat(40, 7, "Total", "", 0, "L", false, 0, "")
	pdf.SetTextColor(99, 102, 241)
	pdf.CellFormat(valueWidth+40, 7, "Rs "+data.Total.StringFixed(2), "", 0, "R", false, 0, "")

	return y + 13
}

func renderSplit(pdf *fpdf.Fpdf, data Data, y, pageHeight, contentWidth float64) {
	if y+20 > pageHeight-footerReserve {
		pdf.AddPage()
		y = pageMargin
	}

	pdf.SetFillColor(250, 245, 255)
	pdf.SetDrawColor(233, 213, 255)
	pdf.Rect(pageMargin, y, contentWidth, 18, "FD")

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetTextColor(124, 58, 237)
	pdf.SetXY(pageMargin+5, y+3)
	pdf.CellFormat(60, 4, "PAYMENT SPLIT", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(pageMargin+5, y+9)
	pdf.CellFormat(45, 5, "Platform Fee (10%)", "", 0, "L", false, 0, "")
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(30, 5, "Rs "+data.AdminCommission.StringFixed(2), "", 0, "L", false, 0, "")
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(45, 5, "Seller Earnings (90%)", "", 0, "L", false, 0, "")
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(30, 5, "Rs "+data.SellerEarnings.StringFixed(2), "", 0, "L", false, 0, "")
}

func renderFooter(pdf *fpdf.Fpdf, pageHeight, contentWidth float64) {
	y := pageHeight - 32

	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(pageMargin, y, pageMargin+contentWidth, y)
	y += 5

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(pageMargin, y)
	pdf.CellFormat(contentWidth, 4, "Thank you for your purchase on Creative Cascade!", "", 0, "C", false, 0, "")

	pdf.SetTextColor(209, 213, 219)
	pdf.SetXY(pageMargin, y+6)
	pdf.CellFormat(contentWidth, 4, "This is a computer-generated invoice and does not require a signature.", "", 0, "C", false, 0, "")
	pdf.SetXY(pageMargin, y+11)
	pdf.CellFormat(contentWidth, 4, fmt.Sprintf("© %d Creative Cascade. All rights reserved.", time.Now().Year()), "", 0, "C", false, 0, "")
}
