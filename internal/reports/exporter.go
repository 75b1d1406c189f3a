package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
)

// ReportExporter renders report data into downloadable bytes.
type ReportExporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

// Export returns the file bytes, a filename and a content type.
func (e *reportExporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeMembers:
		headers, rows := memberRows(data.Members)
		return e.exportByFormat(format, "members_"+timestamp, "Member Register", headers, rows)
	case ReportTypePayments:
		headers, rows := paymentRows(data.Payments)
		return e.exportByFormat(format, "payments_"+timestamp, "Payment Ledger", headers, rows)
	default:
		return nil, "", "", fmt.Errorf("unknown report type: %s", reportType)
	}
}

func (e *reportExporter) exportByFormat(format, basename, title string, headers []string, rows [][]string) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := renderCSV(headers, rows)
		return data, basename + ".csv", "text/csv", err
	case FormatExcel:
		data, err := renderExcel(title, headers, rows)
		return data, basename + ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case FormatPDF:
		data, err := renderPDF(title, headers, rows)
		return data, basename + ".pdf", "application/pdf", err
	default:
		return nil, "", "", fmt.Errorf("unknown format: %s", format)
	}
}

func memberRows(members []member.Member) ([]string, [][]string) {
	headers := []string{"Account Number", "Name", "Phone", "Email", "Address", "Committee", "Position", "Joined"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		email := ""
		if m.Email != nil {
			email = *m.Email
		}
		position := ""
		if m.CommitteePosition != nil {
			position = *m.CommitteePosition
		}
		rows = append(rows, []string{
			m.AccountNumber,
			m.Name,
			m.Phone,
			email,
			m.Address,
			strconv.FormatBool(m.IsCommitteeMember),
			position,
			m.CreatedAt.Format("2006-01-02"),
		})
	}
	return headers, rows
}

func paymentRows(payments []payment.Payment) ([]string, [][]string) {
	headers := []string{"Receipt Number", "Member", "Account Number", "Amount", "Type", "Method", "Month", "Status", "Date"}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		month := ""
		if p.MonthYear != nil {
			month = *p.MonthYear
		}
		rows = append(rows, []string{
			p.ReceiptNumber,
			p.MemberName,
			p.MemberAccountNumber,
			fmt.Sprintf("%.2f", p.Amount),
			p.PaymentType,
			p.PaymentMethod,
			month,
			p.Status,
			p.PaymentDate.Format("2006-01-02 15:04"),
		})
	}
	return headers, rows
}

func renderCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderExcel(title string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, title); err != nil {
		return nil, err
	}
	sheet = title

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(title string, headers []string, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(headers))

	pdf.SetFont("Arial", "B", 9)
	for _, header := range headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
