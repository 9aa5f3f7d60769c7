package model

import "github.com/shopspring/decimal"

// Service represents one row of the services table.
type Service struct {
	ServiceID      uint             `json:"service_id" gorm:"primaryKey;autoIncrement"`
	ServiceName    *string          `json:"service_name" gorm:"size:255"`
	PricePerPeriod *decimal.Decimal `json:"price_per_period" gorm:"type:decimal(10,2)"`
}
