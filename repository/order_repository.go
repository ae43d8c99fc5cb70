package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tannu371/getting-to-know-kanji/models"
)

// OrderRepository is the append-only interface over the order ledger.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	List(ctx context.Context, page, pageSize int) ([]models.Order, int64, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}

type gormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) OrderRepository {
	return &gormOrderRepo{db: db}
}

// Insert appends a new order row. The id and created_at columns are assigned
// by the store; order is updated in place with the assigned values.
func (r *gormOrderRepo) Insert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// List returns one page of orders, newest first, along with the total count.
func (r *gormOrderRepo) List(ctx context.Context, page, pageSize int) ([]models.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CountBySession reports how many rows exist for a checkout session. There is
// no uniqueness constraint on session_id, so repeated webhook deliveries can
// legitimately yield a count above one.
func (r *gormOrderRepo) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
