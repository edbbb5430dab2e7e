package models

import (
	"time"

	"gorm.io/datatypes"
)

// Delivery is one drop-off of product at a store. Lines live and die with
// their parent and are never mutated after creation; billing only reads them.
type Delivery struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	StoreID         uint           `json:"store_id" gorm:"index;not null"`
	Store           Store          `json:"-" gorm:"foreignKey:StoreID"`
	DeliveryDate    datatypes.Date `json:"delivery_date" gorm:"index;not null"`
	HandlerSupplier string         `json:"handler_supplier"`
	HandlerStore    string         `json:"handler_store"`
	Signature       string         `json:"signature" gorm:"type:text"`
	Photo           string         `json:"photo"`
	Lines           []DeliveryLine `json:"lines" gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
}

type DeliveryLine struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	DeliveryID uint    `json:"-" gorm:"index"`
	ProductID  uint    `json:"product_id" gorm:"index;not null"`
	Product    Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Quantity   int     `json:"quantity" gorm:"not null;default:0"`
}
