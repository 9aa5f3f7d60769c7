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

const serviceListKey = "services:list"

// ServiceRepository defines service persistence operations.
type ServiceRepository interface {
	List(ctx context.Context) ([]model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type serviceRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewServiceRepository builds a GORM-backed repository.
func NewServiceRepository(db *gorm.DB, cache *cache.Client) ServiceRepository {
	return &serviceRepository{db: db, cache: cache}
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	if data := r.cache.Get(ctx, serviceListKey); data != nil {
		var cached []model.Service
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheTotal.WithLabelValues("services", "hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheTotal.WithLabelValues("services", "miss").Inc()

	var rows []model.Service
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if payload, err := json.Marshal(rows); err == nil {
		r.cache.Set(ctx, serviceListKey, payload, listCacheTTL)
	}
	return rows, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	r.cache.Invalidate(ctx, serviceListKey)
	metrics.MutationsTotal.WithLabelValues("services", "create").Inc()
	return nil
}

func (r *serviceRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Service{}).Where("service_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("update service %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, serviceListKey)
		metrics.MutationsTotal.WithLabelValues("services", "update").Inc()
	}
	return res.RowsAffected, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("service_id = ?", id).Delete(&model.Service{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete service %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, serviceListKey)
		metrics.MutationsTotal.WithLabelValues("services", "delete").Inc()
	}
	return res.RowsAffected, nil
}
