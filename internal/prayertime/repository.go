package prayertime

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetByDate(ctx context.Context, date string) (*PrayerTimes, error)
	Upsert(ctx context.Context, pt *PrayerTimes) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByDate(ctx context.Context, date string) (*PrayerTimes, error) {
	var pt PrayerTimes
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&pt).Error
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// Upsert inserts or replaces the row for pt.Date. Concurrent first lookups of
// the day race harmlessly; last write wins with equivalent values.
func (r *repository) Upsert(ctx context.Context, pt *PrayerTimes) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			UpdateAll: true,
		}).
		Create(pt).Error
}
