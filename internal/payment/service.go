package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
	"github.com/makkamasjid/masjid-management-backend/internal/member"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrGatewayDisabled  = errors.New("online payments are not configured")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

type Service struct {
	Repo       Repository
	MemberRepo member.Repository
	AuditSvc   auditlog.Service

	client *razorpay.Client
	cfg    *config.Config
}

func NewService(repo Repository, memberRepo member.Repository, cfg *config.Config, auditSvc auditlog.Service) *Service {
	s := &Service{
		Repo:       repo,
		MemberRepo: memberRepo,
		AuditSvc:   auditSvc,
		cfg:        cfg,
	}
	if cfg.RazorpayKey != "" && cfg.RazorpaySecret != "" {
		s.client = razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	}
	return s
}

// CreatePayment records a manual payment. The member must exist and be
// active; name and account number are captured at write time and never
// re-synced.
func (s *Service) CreatePayment(ctx context.Context, req *CreatePaymentRequest, ip string) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	m, err := s.MemberRepo.GetActiveByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.AuditSvc.LogAction(ctx, nil, "PAYMENT_CREATED", map[string]interface{}{
				"member_id": req.MemberID,
				"amount":    req.Amount,
				"error":     "member not found",
			}, ip, "failure")
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	now := time.Now()
	p := &Payment{
		ID:                  uuid.NewString(),
		MemberID:            m.ID,
		MemberName:          m.Name,
		MemberAccountNumber: m.AccountNumber,
		Amount:              req.Amount,
		PaymentType:         req.PaymentType,
		PaymentMethod:       "UPI",
		TransactionID:       req.TransactionID,
		ReceiptNumber:       NewReceiptNumber(now),
		PaymentDate:         now,
		MonthYear:           req.MonthYear,
		Status:              StatusCompleted,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, "PAYMENT_CREATED", map[string]interface{}{
		"payment_id":     p.ID,
		"member_id":      p.MemberID,
		"amount":         p.Amount,
		"receipt_number": p.ReceiptNumber,
	}, ip, "success")

	return p, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	return s.Repo.ListAll(ctx)
}

// ListMemberPayments does not check member existence; an unknown id simply
// yields an empty list.
func (s *Service) ListMemberPayments(ctx context.Context, memberID string) ([]Payment, error) {
	return s.Repo.ListByMember(ctx, memberID)
}

func (s *Service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// StartOnlinePayment creates a Razorpay order and a pending ledger row.
func (s *Service) StartOnlinePayment(ctx context.Context, req *CreateOrderRequest, ip string) (*CreateOrderResponse, error) {
	if s.client == nil {
		return nil, ErrGatewayDisabled
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	m, err := s.MemberRepo.GetActiveByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	amountInPaise := int(req.Amount * 100)
	data := map[string]interface{}{
		"amount":          amountInPaise,
		"currency":        "INR",
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"member_id":    m.ID,
			"payment_type": req.PaymentType,
		},
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		s.AuditSvc.LogAction(ctx, nil, "PAYMENT_ORDER_CREATED", map[string]interface{}{
			"member_id": m.ID,
			"amount":    req.Amount,
			"error":     err.Error(),
		}, ip, "failure")
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, errors.New("unable to extract order_id from Razorpay response")
	}

	now := time.Now()
	p := &Payment{
		ID:                  uuid.NewString(),
		MemberID:            m.ID,
		MemberName:          m.Name,
		MemberAccountNumber: m.AccountNumber,
		Amount:              req.Amount,
		PaymentType:         req.PaymentType,
		PaymentMethod:       "PENDING",
		ReceiptNumber:       NewReceiptNumber(now),
		PaymentDate:         now,
		MonthYear:           req.MonthYear,
		Status:              StatusPending,
		OrderID:             &orderID,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}

	s.AuditSvc.LogAction(ctx, nil, "PAYMENT_ORDER_CREATED", map[string]interface{}{
		"member_id": m.ID,
		"amount":    req.Amount,
		"order_id":  orderID,
	}, ip, "success")

	return &CreateOrderResponse{
		OrderID:     orderID,
		Amount:      req.Amount,
		Currency:    "INR",
		RazorpayKey: s.cfg.RazorpayKey,
	}, nil
}

// VerifyOnlinePayment checks the checkout signature and completes the
// pending row. Already-completed rows are acknowledged without change.
func (s *Service) VerifyOnlinePayment(ctx context.Context, req *VerifyPaymentRequest, ip string) error {
	if s.client == nil {
		return ErrGatewayDisabled
	}

	expected := hmac.New(sha256.New, []byte(s.cfg.RazorpaySecret))
	expected.Write([]byte(req.OrderID + "|" + req.PaymentID))
	computedSignature := hex.EncodeToString(expected.Sum(nil))

	if computedSignature != req.RazorpaySig {
		s.AuditSvc.LogAction(ctx, nil, "PAYMENT_VERIFICATION_FAILED", map[string]interface{}{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
			"reason":     "invalid payment signature",
		}, ip, "failure")
		return ErrInvalidSignature
	}

	p, err := s.Repo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}

	if p.Status == StatusCompleted {
		return nil // already processed
	}

	method := "Razorpay"
	if details, err := s.client.Payment.Fetch(req.PaymentID, nil, nil); err == nil {
		if m, ok := details["method"].(string); ok && m != "" {
			method = m
		}
	}

	if err := s.Repo.Complete(ctx, req.OrderID, method, req.PaymentID); err != nil {
		return err
	}

	s.AuditSvc.LogAction(ctx, nil, "PAYMENT_VERIFIED", map[string]interface{}{
		"order_id":   req.OrderID,
		"payment_id": req.PaymentID,
		"amount":     p.Amount,
	}, ip, "success")

	return nil
}
