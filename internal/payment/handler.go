package payment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/middleware"
)

type Handler struct {
	Service *Service
	cfg     *config.Config
}

func NewHandler(s *Service, cfg *config.Config) *Handler {
	return &Handler{Service: s, cfg: cfg}
}

// CreatePayment - POST /payments
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	p, err := h.Service.CreatePayment(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetPayments - GET /payments
func (h *Handler) GetPayments(c *gin.Context) {
	payments, err := h.Service.ListPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}

	if payments == nil {
		payments = []Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// GetMemberPayments - GET /payments/member/:id
func (h *Handler) GetMemberPayments(c *gin.Context) {
	payments, err := h.Service.ListMemberPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}

	if payments == nil {
		payments = []Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// GetReceipt - GET /payments/:id/receipt
func (h *Handler) GetReceipt(c *gin.Context) {
	p, err := h.Service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payment"})
		return
	}

	pdfBytes, err := RenderReceiptPDF(p, h.cfg.PrayerLocation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.pdf\"", p.ReceiptNumber))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// CreateOrder - POST /payments/order
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.StartOnlinePayment(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrGatewayDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPayment - POST /payments/verify
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	err := h.Service.VerifyOnlinePayment(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature), errors.Is(err, ErrGatewayDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment verified successfully"})
}
