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

const customerListKey = "customers:list"

// CustomerRepository defines customer persistence operations.
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type customerRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewCustomerRepository builds a GORM-backed repository.
func NewCustomerRepository(db *gorm.DB, cache *cache.Client) CustomerRepository {
	return &customerRepository{db: db, cache: cache}
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	if data := r.cache.Get(ctx, customerListKey); data != nil {
		var cached []model.Customer
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheTotal.WithLabelValues("customers", "hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheTotal.WithLabelValues("customers", "miss").Inc()

	var rows []model.Customer
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if payload, err := json.Marshal(rows); err == nil {
		r.cache.Set(ctx, customerListKey, payload, listCacheTTL)
	}
	return rows, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	r.cache.Invalidate(ctx, customerListKey)
	metrics.MutationsTotal.WithLabelValues("customers", "create").Inc()
	return nil
}

func (r *customerRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("customer_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("update customer %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, customerListKey)
		metrics.MutationsTotal.WithLabelValues("customers", "update").Inc()
	}
	return res.RowsAffected, nil
}

func (r *customerRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("customer_id = ?", id).Delete(&model.Customer{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, customerListKey)
		metrics.MutationsTotal.WithLabelValues("customers", "delete").Inc()
	}
	return res.RowsAffected, nil
}
