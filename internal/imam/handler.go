package imam

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/makkamasjid/masjid-management-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateImam - POST /imam
func (h *Handler) CreateImam(c *gin.Context) {
	var req CreateImamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	i, err := h.Service.CreateImam(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrActiveImamExist), errors.Is(err, ErrBadDateFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create imam"})
		}
		return
	}

	c.JSON(http.StatusOK, i)
}

// GetActiveImam - GET /imam
func (h *Handler) GetActiveImam(c *gin.Context) {
	i, err := h.Service.GetActiveImam(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch imam"})
		return
	}

	// explicit null when no active imam exists
	c.JSON(http.StatusOK, i)
}

// UpdateImam - PUT /imam/:id
func (h *Handler) UpdateImam(c *gin.Context) {
	var req CreateImamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	i, err := h.Service.UpdateImam(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrImamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Imam not found"})
		case errors.Is(err, ErrBadDateFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update imam"})
		}
		return
	}

	c.JSON(http.StatusOK, i)
}
