package model

import "github.com/shopspring/decimal"

// OrderItem represents one row of the order_items table, linking an order
// to a service with its recurring payment terms.
type OrderItem struct {
	OrderItemID          uint             `json:"order_item_id" gorm:"primaryKey;autoIncrement"`
	OrderID              *int             `json:"order_id" gorm:"index"`
	ServiceID            *int             `json:"service_id" gorm:"index"`
	OrderQuantity        *int             `json:"order_quantity"`
	MonthlyPaymentAmount *decimal.Decimal `json:"monthly_payment_amount" gorm:"type:decimal(10,2)"`
	MonthlyPaymentDate   *Date            `json:"monthly_payment_date"`
}
