package member

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

// CreateMember - POST /members
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	m, err := h.Service.CreateMember(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create member: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// GetMembers - GET /members
func (h *Handler) GetMembers(c *gin.Context) {
	members, err := h.Service.ListMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch members"})
		return
	}

	if members == nil {
		members = []Member{}
	}
	c.JSON(http.StatusOK, members)
}

// GetMember - GET /members/:id
func (h *Handler) GetMember(c *gin.Context) {
	m, err := h.Service.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMember - PUT /members/:id
func (h *Handler) UpdateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	m, err := h.Service.UpdateMember(c.Request.Context(), c.Param("id"), &req, middleware.GetIPFromContext(c))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// DeleteMember - DELETE /members/:id
func (h *Handler) DeleteMember(c *gin.Context) {
	err := h.Service.DeleteMember(c.Request.Context(), c.Param("id"), middleware.GetIPFromContext(c))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
