package announcement

import (
	"context"

	"gorm.io/gorm"
)

const listCap = 100

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	ListActive(ctx context.Context) ([]Announcement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ListActive(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(listCap).
		Find(&announcements).Error
	return announcements, err
}
