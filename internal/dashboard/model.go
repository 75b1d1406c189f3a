package dashboard

import (
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
)

// Stats is the read-only composition returned by /dashboard/stats,
// recomputed on every call.
type Stats struct {
	TotalMembers       int64             `json:"total_members"`
	CommitteeMembers   int64             `json:"committee_members"`
	MonthlyCollections float64           `json:"monthly_collections"`
	RecentPayments     []payment.Payment `json:"recent_payments"`
}
