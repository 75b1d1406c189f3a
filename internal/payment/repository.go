package payment

import (
	"context"

	"gorm.io/gorm"
)

const listCap = 1000

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListAll(ctx context.Context) ([]Payment, error)
	ListByMember(ctx context.Context, memberID string) ([]Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*Payment, error)
	Complete(ctx context.Context, orderID, paymentMethod, transactionID string) error
	SumByMonth(ctx context.Context, monthYear string) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]Payment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ListAll(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Order("payment_date DESC").
		Limit(listCap).
		Find(&payments).Error
	return payments, err
}

func (r *repository) ListByMember(ctx context.Context, memberID string) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("payment_date DESC").
		Limit(listCap).
		Find(&payments).Error
	return payments, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Complete(ctx context.Context, orderID, paymentMethod, transactionID string) error {
	return r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":         StatusCompleted,
			"payment_method": paymentMethod,
			"transaction_id": transactionID,
		}).Error
}

func (r *repository) SumByMonth(ctx context.Context, monthYear string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("month_year = ?", monthYear).
		Scan(&total).Error
	return total, err
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Order("payment_date DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
