package infra

// receipt.go — plain-text receipt rendering for terminals and raw thermal
// printers. 40 columns, same content as the PDF variant.

import (
	"fmt"
	"strings"

	"retailpos/internal/model"

	"github.com/shopspring/decimal"
)

const receiptWidth = 40

// FormatReceiptText renders a committed sale as a fixed-width text receipt.
func FormatReceiptText(sale *model.Sale, info ReceiptInfo) string {
	var b strings.Builder
	cur := info.CurrencySymbol
	rule := strings.Repeat("-", receiptWidth)

	b.WriteString(center(info.StoreName) + "\n")
	b.WriteString(center("Sales Receipt") + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%-20s %19s\n", sale.InvoiceNo, sale.DateTime.Format("02/01/2006 15:04")))
	b.WriteString(rule + "\n")

	b.WriteString(fmt.Sprintf("%-15s %3s %9s %10s\n", "Item", "Qty", "Price", "Total"))
	b.WriteString(rule + "\n")

	subtotal := decimal.Zero
	for _, item := range sale.Items {
		name := item.Description
		if len(name) > 15 {
			name = name[:15]
		}
		b.WriteString(fmt.Sprintf("%-15s %3s %9s %10s\n",
			name, fmt.Sprintf("x%d", item.Qty),
			cur+item.UnitPrice.StringFixed(2),
			cur+item.LineTotal.StringFixed(2)))
		subtotal = subtotal.Add(item.LineTotal)
	}
	tax := sale.TotalAmount.Sub(subtotal)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%-28s %11s\n", "Subtotal", cur+subtotal.StringFixed(2)))
	if !tax.IsZero() {
		b.WriteString(fmt.Sprintf("%-28s %11s\n", "Tax", cur+tax.StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf("%-28s %11s\n", "TOTAL", cur+sale.TotalAmount.StringFixed(2)))
	b.WriteString(fmt.Sprintf("%-28s %11s\n", "Paid ("+sale.PaymentMethod+")", cur+sale.PaidAmount.StringFixed(2)))
	if !sale.ChangeAmount.IsZero() {
		b.WriteString(fmt.Sprintf("%-28s %11s\n", "Change", cur+sale.ChangeAmount.StringFixed(2)))
	}

	if info.Footer != "" {
		b.WriteString(rule + "\n")
		b.WriteString(center(info.Footer) + "\n")
	}

	return b.String()
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
