package prayertime

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// GetPrayerTimes - GET /prayer-times
func (h *Handler) GetPrayerTimes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.GetTodayTimes(c.Request.Context()))
}
