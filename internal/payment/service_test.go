package payment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
	"github.com/makkamasjid/masjid-management-backend/internal/member"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite test database")

	require.NoError(t, db.AutoMigrate(&Payment{}, &member.Member{}, &auditlog.AuditLog{}))
	return db
}

func newTestService(t *testing.T) (*Service, *member.Service, *gorm.DB) {
	db := setupTestDB(t)
	auditSvc := auditlog.NewService(auditlog.NewRepository(db))
	memberRepo := member.NewRepository(db)
	memberSvc := member.NewService(memberRepo, auditSvc)
	// Razorpay keys unset: the online flow reports ErrGatewayDisabled
	svc := NewService(NewRepository(db), memberRepo, &config.Config{}, auditSvc)
	return svc, memberSvc, db
}

func createTestMember(t *testing.T, memberSvc *member.Service) *member.Member {
	m, err := memberSvc.CreateMember(context.Background(), &member.CreateMemberRequest{
		Name:          "Abdul Rahman",
		Phone:         "9876543210",
		Address:       "12 Main Road, Ripponpet",
		IDProofType:   "Aadhar",
		IDProofNumber: "1234-5678-9012",
	}, "127.0.0.1")
	require.NoError(t, err)
	return m
}

func TestCreatePaymentGeneratesReceiptNumber(t *testing.T) {
	svc, memberSvc, _ := newTestService(t)
	ctx := context.Background()
	m := createTestMember(t, memberSvc)

	p, err := svc.CreatePayment(ctx, &CreatePaymentRequest{
		MemberID:    m.ID,
		Amount:      500,
		PaymentType: "monthly_chanda",
	}, "127.0.0.1")
	require.NoError(t, err)

	receiptPattern := regexp.MustCompile(`^RCP\d{8}[A-Z0-9]{6}$`)
	assert.Regexp(t, receiptPattern, p.ReceiptNumber)
	assert.Contains(t, p.ReceiptNumber, time.Now().Format("20060102"))

	assert.Equal(t, m.Name, p.MemberName)
	assert.Equal(t, m.AccountNumber, p.MemberAccountNumber)
	assert.Equal(t, "UPI", p.PaymentMethod)
	assert.Equal(t, StatusCompleted, p.Status)
}

func TestCreatePaymentUnknownMember(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreatePayment(context.Background(), &CreatePaymentRequest{
		MemberID:    "no-such-member",
		Amount:      100,
		PaymentType: "donation",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCreatePaymentInactiveMember(t *testing.T) {
	svc, memberSvc, _ := newTestService(t)
	ctx := context.Background()

	m := createTestMember(t, memberSvc)
	require.NoError(t, memberSvc.DeleteMember(ctx, m.ID, "127.0.0.1"))

	_, err := svc.CreatePayment(ctx, &CreatePaymentRequest{
		MemberID:    m.ID,
		Amount:      100,
		PaymentType: "donation",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, memberSvc, _ := newTestService(t)
	m := createTestMember(t, memberSvc)

	for _, amount := range []float64{0, -50} {
		_, err := svc.CreatePayment(context.Background(), &CreatePaymentRequest{
			MemberID:    m.ID,
			Amount:      amount,
			PaymentType: "donation",
		}, "127.0.0.1")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestListPaymentsNewestFirst(t *testing.T) {
	svc, memberSvc, db := newTestService(t)
	ctx := context.Background()
	m := createTestMember(t, memberSvc)

	var ids []string
	for i := 0; i < 3; i++ {
		p, err := svc.CreatePayment(ctx, &CreatePaymentRequest{
			MemberID:    m.ID,
			Amount:      float64(100 * (i + 1)),
			PaymentType: "donation",
		}, "127.0.0.1")
		require.NoError(t, err)
		ids = append(ids, p.ID)

		// space the timestamps so the ordering assertion is deterministic
		require.NoError(t, db.Model(&Payment{}).Where("id = ?", p.ID).
			Update("payment_date", time.Now().Add(time.Duration(i)*time.Minute)).Error)
	}

	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, ids[2], payments[0].ID)
	assert.Equal(t, ids[0], payments[2].ID)
}

func TestListMemberPaymentsUnknownMemberIsEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)

	payments, err := svc.ListMemberPayments(context.Background(), "no-such-member")
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestListMemberPaymentsFilters(t *testing.T) {
	svc, memberSvc, _ := newTestService(t)
	ctx := context.Background()

	m1 := createTestMember(t, memberSvc)
	m2 := createTestMember(t, memberSvc)

	_, err := svc.CreatePayment(ctx, &CreatePaymentRequest{MemberID: m1.ID, Amount: 100, PaymentType: "donation"}, "127.0.0.1")
	require.NoError(t, err)
	_, err = svc.CreatePayment(ctx, &CreatePaymentRequest{MemberID: m2.ID, Amount: 200, PaymentType: "donation"}, "127.0.0.1")
	require.NoError(t, err)

	payments, err := svc.ListMemberPayments(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, m1.ID, payments[0].MemberID)
}

func TestOnlinePaymentDisabledWithoutKeys(t *testing.T) {
	svc, memberSvc, _ := newTestService(t)
	m := createTestMember(t, memberSvc)

	_, err := svc.StartOnlinePayment(context.Background(), &CreateOrderRequest{
		MemberID:    m.ID,
		Amount:      100,
		PaymentType: "donation",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrGatewayDisabled)
}

func TestRenderReceiptPDF(t *testing.T) {
	svc, memberSvc, _ := newTestService(t)
	m := createTestMember(t, memberSvc)

	p, err := svc.CreatePayment(context.Background(), &CreatePaymentRequest{
		MemberID:    m.ID,
		Amount:      750.50,
		PaymentType: "ramzan_taravi",
	}, "127.0.0.1")
	require.NoError(t, err)

	pdfBytes, err := RenderReceiptPDF(p, "Ripponpet, Bangalore")
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
