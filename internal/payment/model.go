package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment statuses. The ledger is append-only; a row only ever moves from
// pending to completed via the online verification path.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Payment types accepted from clients. Kept as free strings to match the
// store's loose enumeration: monthly_chanda, ramzan_taravi, donation.
type Payment struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MemberID            string    `gorm:"type:varchar(36);not null;index" json:"member_id"`
	MemberName          string    `gorm:"type:varchar(255);not null" json:"member_name"`
	MemberAccountNumber string    `gorm:"type:varchar(20);not null" json:"member_account_number"`
	Amount              float64   `gorm:"not null" json:"amount"`
	PaymentType         string    `gorm:"type:varchar(50);not null" json:"payment_type"`
	PaymentMethod       string    `gorm:"type:varchar(50);default:UPI" json:"payment_method"`
	TransactionID       *string   `gorm:"type:varchar(100)" json:"transaction_id"`
	ReceiptNumber       string    `gorm:"type:varchar(30);index" json:"receipt_number"`
	PaymentDate         time.Time `gorm:"autoCreateTime;index" json:"payment_date"`
	MonthYear           *string   `gorm:"type:varchar(7);index" json:"month_year"` // "2025-03" for recurring dues
	Status              string    `gorm:"type:varchar(20);default:completed" json:"status"`
	OrderID             *string   `gorm:"type:varchar(100);index" json:"order_id,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

type CreatePaymentRequest struct {
	MemberID      string  `json:"member_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentType   string  `json:"payment_type" binding:"required"`
	TransactionID *string `json:"transaction_id"`
	MonthYear     *string `json:"month_year"`
}

// CreateOrderRequest starts an online Razorpay payment.
type CreateOrderRequest struct {
	MemberID    string  `json:"member_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentType string  `json:"payment_type" binding:"required"`
	MonthYear   *string `json:"month_year"`
}

type CreateOrderResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	RazorpayKey string  `json:"razorpay_key"`
}

// VerifyPaymentRequest carries the Razorpay checkout callback fields.
type VerifyPaymentRequest struct {
	OrderID     string `json:"razorpay_order_id" binding:"required"`
	PaymentID   string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySig string `json:"razorpay_signature" binding:"required"`
}

// NewReceiptNumber returns "RCP", the current date and 6 uppercase characters
// from a fresh UUID. Collisions are improbable rather than prevented.
func NewReceiptNumber(now time.Time) string {
	return "RCP" + now.Format("20060102") + strings.ToUpper(uuid.NewString()[:6])
}
