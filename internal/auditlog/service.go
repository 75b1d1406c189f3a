package auditlog

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
)

type Service interface {
	// LogAction records an action without failing the caller; audit writes are
	// best-effort and errors are only logged.
	LogAction(ctx context.Context, adminID *uint, action string, details map[string]interface{}, ip, status string)
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, adminID *uint, action string, details map[string]interface{}, ip, status string) {
	raw, err := json.Marshal(details)
	if err != nil {
		log.Printf("⚠️ Audit details marshal failed for %s: %v", action, err)
		raw = []byte("{}")
	}

	entry := &AuditLog{
		AdminID:   adminID,
		Action:    action,
		Details:   datatypes.JSON(raw),
		IPAddress: ip,
		Status:    status,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ Audit log write failed for %s: %v", action, err)
	}
}

func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}
