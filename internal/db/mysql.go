package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"elective/internal/config"
	"elective/internal/model"
)

// NewMySQL returns a connected GORM DB instance for the configured store.
func NewMySQL(cfg config.MySQLConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return gdb, nil
}

// Migrate creates or updates the six resource tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Address{},
		&model.Customer{},
		&model.Service{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
	)
}
