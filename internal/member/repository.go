package member

import (
	"context"

	"gorm.io/gorm"
)

const listCap = 1000

type Repository interface {
	Create(ctx context.Context, m *Member) error
	ListActive(ctx context.Context) ([]Member, error)
	GetActiveByID(ctx context.Context, id string) (*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Update(ctx context.Context, m *Member) error
	Deactivate(ctx context.Context, id string) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountActiveCommittee(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) ListActive(ctx context.Context) ([]Member, error) {
	var members []Member
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Limit(listCap).
		Find(&members).Error
	return members, err
}

func (r *repository) GetActiveByID(ctx context.Context, id string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	// Save rewrites every column, including cleared optional fields
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("id = ?", id).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *repository) CountActiveCommittee(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("is_active = ? AND is_committee_member = ?", true, true).
		Count(&count).Error
	return count, err
}
