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

const orderItemListKey = "order_items:list"

// OrderItemRepository defines order item persistence operations.
type OrderItemRepository interface {
	List(ctx context.Context) ([]model.OrderItem, error)
	Create(ctx context.Context, item *model.OrderItem) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type orderItemRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewOrderItemRepository builds a GORM-backed repository.
func NewOrderItemRepository(db *gorm.DB, cache *cache.Client) OrderItemRepository {
	return &orderItemRepository{db: db, cache: cache}
}

func (r *orderItemRepository) List(ctx context.Context) ([]model.OrderItem, error) {
	if data := r.cache.Get(ctx, orderItemListKey); data != nil {
		var cached []model.OrderItem
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheTotal.WithLabelValues("order_items", "hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheTotal.WithLabelValues("order_items", "miss").Inc()

	var rows []model.OrderItem
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	if payload, err := json.Marshal(rows); err == nil {
		r.cache.Set(ctx, orderItemListKey, payload, listCacheTTL)
	}
	return rows, nil
}

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create order item: %w", err)
	}
	r.cache.Invalidate(ctx, orderItemListKey)
	metrics.MutationsTotal.WithLabelValues("order_items", "create").Inc()
	return nil
}

func (r *orderItemRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.OrderItem{}).Where("order_item_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("update order item %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, orderItemListKey)
		metrics.MutationsTotal.WithLabelValues("order_items", "update").Inc()
	}
	return res.RowsAffected, nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("order_item_id = ?", id).Delete(&model.OrderItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete order item %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, orderItemListKey)
		metrics.MutationsTotal.WithLabelValues("order_items", "delete").Inc()
	}
	return res.RowsAffected, nil
}
