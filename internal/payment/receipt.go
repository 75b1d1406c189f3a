package payment

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderReceiptPDF produces a one-page payment receipt.
func RenderReceiptPDF(p *Payment, locationLabel string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "MAKKA MASJID RIPPONPET", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, locationLabel, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, "Payment Receipt", "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Receipt Number", p.ReceiptNumber},
		{"Date", p.PaymentDate.Format("02 Jan 2006 15:04")},
		{"Member Name", p.MemberName},
		{"Account Number", p.MemberAccountNumber},
		{"Payment Type", strings.ReplaceAll(p.PaymentType, "_", " ")},
		{"Payment Method", p.PaymentMethod},
		{"Amount", fmt.Sprintf("Rs. %.2f", p.Amount)},
		{"Status", p.Status},
	}
	if p.MonthYear != nil {
		rows = append(rows, [2]string{"Month", *p.MonthYear})
	}
	if p.TransactionID != nil {
		rows = append(rows, [2]string{"Transaction ID", *p.TransactionID})
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(55, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "This is a system-generated receipt.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt PDF generation failed: %w", err)
	}
	return buf.Bytes(), nil
}
