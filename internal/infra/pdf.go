package infra

// pdf.go — receipt PDF generation using go-pdf/fpdf. Produces a thermal
// receipt-style document: store header, invoice number and timestamp, item
// table, bold total, payment line and footer. Output is written to
// receiptDir/receipt_{invoice}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"retailpos/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ReceiptInfo carries the store-level settings printed on every receipt.
type ReceiptInfo struct {
	StoreName      string
	CurrencySymbol string
	Footer         string
}

// GenerateReceiptPDF writes a PDF receipt for a committed sale and returns
// the path of the generated file. receiptDir is created if needed.
func GenerateReceiptPDF(sale *model.Sale, info ReceiptInfo, receiptDir string) (string, error) {
	if err := os.MkdirAll(receiptDir, 0755); err != nil {
		return "", fmt.Errorf("pdf: create receipt dir: %w", err)
	}

	fileName := fmt.Sprintf("receipt_%s.pdf", sale.InvoiceNo)
	filePath := filepath.Join(receiptDir, fileName)

	// 74mm × 105mm — close to thermal receipt paper.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	cur := info.CurrencySymbol

	// Header
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, info.StoreName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Sales Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Invoice info
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, sale.InvoiceNo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, sale.DateTime.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// Items header
	col1 := contentW * 0.40
	col2 := contentW * 0.12
	col3 := contentW * 0.22
	col4 := contentW * 0.26

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

	// Item rows
	pdf.SetFont("Helvetica", "", 7)
	subtotal := decimal.Zero
	for _, item := range sale.Items {
		name := item.Description
		if len(name) > 17 {
			name = name[:16] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Qty), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, cur+item.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, cur+item.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
		subtotal = subtotal.Add(item.LineTotal)
	}
	tax := sale.TotalAmount.Sub(subtotal)

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// Totals
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3+col4, 4, cur+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !tax.IsZero() {
		pdf.CellFormat(col1+col2, 4, "Tax:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3+col4, 4, cur+tax.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3+col4, 6, cur+sale.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Paid ("+sale.PaymentMethod+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3+col4, 4, cur+sale.PaidAmount.StringFixed(2), "", 1, "R", false, 0, "")
	if !sale.ChangeAmount.IsZero() {
		pdf.CellFormat(col1+col2, 4, "Change:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3+col4, 4, cur+sale.ChangeAmount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// Footer
	if info.Footer != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(contentW, 4, info.Footer, "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
