package models

import "github.com/shopspring/decimal"

// Product is a billable catalog item. SalePrice is the public label price
// billing starts from; PurchaseCost is informational only.
type Product struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	Name         string           `json:"name" gorm:"not null"`
	SalePrice    decimal.Decimal  `json:"sale_price" gorm:"type:decimal(10,2);not null"`
	PurchaseCost *decimal.Decimal `json:"purchase_cost" gorm:"type:decimal(10,2)"`
}
