package reports

import (
	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
)

// Report types
const (
	ReportTypeMembers  = "members"
	ReportTypePayments = "payments"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// ReportData carries the rows handed to the exporter.
type ReportData struct {
	Members  []member.Member
	Payments []payment.Payment
}
