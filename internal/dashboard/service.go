package dashboard

import (
	"context"
	"time"

	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
)

const recentPaymentsLimit = 5

type Service struct {
	MemberRepo  member.Repository
	PaymentRepo payment.Repository

	// now is injectable so tests can pin the current month
	now func() time.Time
}

func NewService(memberRepo member.Repository, paymentRepo payment.Repository) *Service {
	return &Service{
		MemberRepo:  memberRepo,
		PaymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// GetStats composes counts and the current-month collection sum across the
// member and payment collections. No caching, no transaction.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	totalMembers, err := s.MemberRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	committeeMembers, err := s.MemberRepo.CountActiveCommittee(ctx)
	if err != nil {
		return nil, err
	}

	currentMonth := s.now().Format("2006-01")
	monthlyCollections, err := s.PaymentRepo.SumByMonth(ctx, currentMonth)
	if err != nil {
		return nil, err
	}

	recentPayments, err := s.PaymentRepo.ListRecent(ctx, recentPaymentsLimit)
	if err != nil {
		return nil, err
	}
	if recentPayments == nil {
		recentPayments = []payment.Payment{}
	}

	return &Stats{
		TotalMembers:       totalMembers,
		CommitteeMembers:   committeeMembers,
		MonthlyCollections: monthlyCollections,
		RecentPayments:     recentPayments,
	}, nil
}
