package announcement

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/utils"
)

type Service struct {
	Repo Repository
	cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{Repo: repo, cfg: cfg}
}

// CreateAnnouncement stores the record, then fans out a Kafka event and an
// FCM push. Fan-out is best-effort: failures are logged, never returned.
func (s *Service) CreateAnnouncement(ctx context.Context, req *CreateAnnouncementRequest) (*Announcement, error) {
	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}

	a := &Announcement{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: req.CreatedBy,
		IsActive:  true,
		Priority:  priority,
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}

	if err := utils.PublishEvent(ctx, a.ID, a); err != nil {
		log.Printf("⚠️ Announcement event publish failed: %v", err)
	}

	if utils.IsFCMEnabled() {
		if err := utils.SendToTopic(ctx, s.cfg.FCMTopic, a.Title, a.Content); err != nil {
			log.Printf("⚠️ Announcement push failed: %v", err)
		}
	}

	return a, nil
}

func (s *Service) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	return s.Repo.ListActive(ctx)
}
