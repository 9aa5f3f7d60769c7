package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"elective/internal/cache"
	"elective/internal/metrics"
	"elective/internal/model"
)

const orderListKey = "orders:list"

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type orderRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB, cache *cache.Client) OrderRepository {
	return &orderRepository{db: db, cache: cache}
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	if data := r.cache.Get(ctx, orderListKey); data != nil {
		var cached []model.Order
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheTotal.WithLabelValues("orders", "hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheTotal.WithLabelValues("orders", "miss").Inc()

	var rows []model.Order
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if payload, err := json.Marshal(rows); err == nil {
		r.cache.Set(ctx, orderListKey, payload, listCacheTTL)
	}
	return rows, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	r.cache.Invalidate(ctx, orderListKey)
	metrics.MutationsTotal.WithLabelValues("orders", "create").Inc()
	return nil
}

func (r *orderRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("order_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("update order %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, orderListKey)
		metrics.MutationsTotal.WithLabelValues("orders", "update").Inc()
	}
	return res.RowsAffected, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&model.Order{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete order %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, orderListKey)
		metrics.MutationsTotal.WithLabelValues("orders", "delete").Inc()
	}
	return res.RowsAffected, nil
}
