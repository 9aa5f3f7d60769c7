package model

import "github.com/shopspring/decimal"

// Payment represents one row of the payments table.
type Payment struct {
	PaymentID            uint             `json:"payment_id" gorm:"primaryKey;autoIncrement"`
	OrderID              *int             `json:"order_id" gorm:"index"`
	PaymentDate          *Date            `json:"payment_date"`
	PaymentAmount        *decimal.Decimal `json:"payment_amount" gorm:"type:decimal(10,2)"`
	PaymentMethod        *string          `json:"payment_method" gorm:"size:50"`
	TransactionReference *string          `json:"transaction_reference" gorm:"size:255"`
}
