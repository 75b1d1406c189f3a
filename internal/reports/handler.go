package reports

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ExportMembers - GET /reports/members?format=csv|excel|pdf
func (h *Handler) ExportMembers(c *gin.Context) {
	h.export(c, ReportTypeMembers)
}

// ExportPayments - GET /reports/payments?format=csv|excel|pdf
func (h *Handler) ExportPayments(c *gin.Context) {
	h.export(c, ReportTypePayments)
}

func (h *Handler) export(c *gin.Context, reportType string) {
	format := c.DefaultQuery("format", FormatCSV)
	if format != FormatCSV && format != FormatExcel && format != FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format: " + format})
		return
	}

	data, filename, contentType, err := h.Service.GenerateReport(c.Request.Context(), reportType, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report: " + err.Error()})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, data)
}
