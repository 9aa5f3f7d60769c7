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

const addressListKey = "addresses:list"

// AddressRepository defines address persistence operations.
type AddressRepository interface {
	List(ctx context.Context) ([]model.Address, error)
	Create(ctx context.Context, address *model.Address) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type addressRepository struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewAddressRepository builds a GORM-backed repository.
func NewAddressRepository(db *gorm.DB, cache *cache.Client) AddressRepository {
	return &addressRepository{db: db, cache: cache}
}

func (r *addressRepository) List(ctx context.Context) ([]model.Address, error) {
	if data := r.cache.Get(ctx, addressListKey); data != nil {
		var cached []model.Address
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.CacheTotal.WithLabelValues("addresses", "hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheTotal.WithLabelValues("addresses", "miss").Inc()

	var rows []model.Address
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	if payload, err := json.Marshal(rows); err == nil {
		r.cache.Set(ctx, addressListKey, payload, listCacheTTL)
	}
	return rows, nil
}

func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	r.cache.Invalidate(ctx, addressListKey)
	metrics.MutationsTotal.WithLabelValues("addresses", "create").Inc()
	return nil
}

func (r *addressRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Address{}).Where("address_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, fmt.Errorf("update address %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, addressListKey)
		metrics.MutationsTotal.WithLabelValues("addresses", "update").Inc()
	}
	return res.RowsAffected, nil
}

func (r *addressRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("address_id = ?", id).Delete(&model.Address{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete address %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		r.cache.Invalidate(ctx, addressListKey)
		metrics.MutationsTotal.WithLabelValues("addresses", "delete").Inc()
	}
	return res.RowsAffected, nil
}
