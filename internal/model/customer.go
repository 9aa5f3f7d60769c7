package model

// Customer represents one row of the customers table. AddressID references
// an address row, but no referential integrity is enforced at this layer.
type Customer struct {
	CustomerID    uint    `json:"customer_id" gorm:"primaryKey;autoIncrement"`
	AddressID     *int    `json:"address_id" gorm:"index"`
	CustomerName  *string `json:"customer_name" gorm:"size:255"`
	CustomerPhone *string `json:"customer_phone" gorm:"size:50"`
	CustomerEmail *string `json:"customer_email" gorm:"size:255"`
}
