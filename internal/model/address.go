package model

// Address represents one row of the addresses table. Non-key fields are
// pointers because the full-overwrite update path can leave columns NULL.
type Address struct {
	AddressID           uint    `json:"address_id" gorm:"primaryKey;autoIncrement"`
	NumberBuilding      *string `json:"number_building" gorm:"size:255"`
	Street              *string `json:"street" gorm:"size:255"`
	City                *string `json:"city" gorm:"size:255"`
	ZipPostcode         *string `json:"zip_postcode" gorm:"size:50"`
	StateProvinceCounty *string `json:"state_province_county" gorm:"size:255"`
	Country             *string `json:"country" gorm:"size:255"`
}
