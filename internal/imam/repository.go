package imam

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, i *Imam) error
	GetActive(ctx context.Context) (*Imam, error)
	GetByID(ctx context.Context, id string) (*Imam, error)
	Update(ctx context.Context, i *Imam) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Imam) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *repository) GetActive(ctx context.Context) (*Imam, error) {
	var i Imam
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Imam, error) {
	var i Imam
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) Update(ctx context.Context, i *Imam) error {
	return r.db.WithContext(ctx).Save(i).Error
}
