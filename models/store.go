package models

import "github.com/shopspring/decimal"

// Store is a retail location receiving deliveries and returning unsold product.
// MarginPercent is the store's cut of the public sale price: a 20.00 margin
// means the store is billed 80% of each product's sale price.
type Store struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Name              string          `json:"name" gorm:"not null"`
	Address           string          `json:"address"`
	NotificationEmail string          `json:"notification_email"`
	MarginPercent     decimal.Decimal `json:"margin_percent" gorm:"type:decimal(5,2);not null;default:0"`
	PaymentTermDays   int             `json:"payment_term_days" gorm:"not null;default:30"`
}
