package reports

import (
	"context"

	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
)

type Service struct {
	MemberRepo  member.Repository
	PaymentRepo payment.Repository
	Exporter    ReportExporter
}

func NewService(memberRepo member.Repository, paymentRepo payment.Repository) *Service {
	return &Service{
		MemberRepo:  memberRepo,
		PaymentRepo: paymentRepo,
		Exporter:    NewReportExporter(),
	}
}

// GenerateReport fetches the rows for the requested report and renders them
// in the requested format.
func (s *Service) GenerateReport(ctx context.Context, reportType, format string) ([]byte, string, string, error) {
	var data ReportData

	switch reportType {
	case ReportTypeMembers:
		members, err := s.MemberRepo.ListActive(ctx)
		if err != nil {
			return nil, "", "", err
		}
		data.Members = members
	case ReportTypePayments:
		payments, err := s.PaymentRepo.ListAll(ctx)
		if err != nil {
			return nil, "", "", err
		}
		data.Payments = payments
	}

	return s.Exporter.Export(reportType, format, data)
}
