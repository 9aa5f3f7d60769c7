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

const paymentListKey = "payments:list"

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	List(ctx context.Context) ([]model.Payment, error)
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type paymentRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewPaymentRepository builds a GORM-backed repository.
func NewPaymentRepository(db *gorm.DB, cache *cache.Client) PaymentRepository {
	return &paymentRepository{db: db, cache: cache}
}

func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	if data := r.cache.Get(ctx, paymentListKey); data != nil {
		var cached []model.Payment
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheTotal.WithLabelValues("payments", "hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheTotal.WithLabelValues("payments", "miss").Inc()

	var rows []model.Payment
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if payload, err := json.Marshal(rows); err == nil {
		r.cache.Set(ctx, paymentListKey, payload, listCacheTTL)
	}
	return rows, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	r.cache.Invalidate(ctx, paymentListKey)
	metrics.MutationsTotal.WithLabelValues("payments", "create").Inc()
	return nil
}

func (r *paymentRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Payment{}).Where("payment_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("update payment %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, paymentListKey)
		metrics.MutationsTotal.WithLabelValues("payments", "update").Inc()
	}
	return res.RowsAffected, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("payment_id = ?", id).Delete(&model.Payment{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete payment %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, paymentListKey)
		metrics.MutationsTotal.WithLabelValues("payments", "delete").Inc()
	}
	return res.RowsAffected, nil
}
