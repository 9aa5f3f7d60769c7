package model

// Order represents one row of the orders table.
type Order struct {
	OrderID     uint    `json:"order_id" gorm:"primaryKey;autoIncrement"`
	CustomerID  *int    `json:"customer_id" gorm:"index"`
	OrderStatus *string `json:"order_status" gorm:"size:50"`
	OrderDate   *Date   `json:"order_date"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
}
