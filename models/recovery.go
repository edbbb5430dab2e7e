package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recovery is a pickup of unsold product from a store; on an invoice it acts
// as a credit against deliveries. Structurally the mirror of Delivery.
type Recovery struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	StoreID         uint           `json:"store_id" gorm:"index;not null"`
	Store           Store          `json:"-" gorm:"foreignKey:StoreID"`
	RecoveryDate    datatypes.Date `json:"recovery_date" gorm:"index;not null"`
	HandlerSupplier string         `json:"handler_supplier"`
	HandlerStore    string         `json:"handler_store"`
	Signature       string         `json:"signature" gorm:"type:text"`
	Photo           string         `json:"photo"`
	Lines           []RecoveryLine `json:"lines" gorm:"foreignKey:RecoveryID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
}

type RecoveryLine struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	RecoveryID uint    `json:"-" gorm:"index"`
	ProductID  uint    `json:"product_id" gorm:"index;not null"`
	Product    Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Quantity   int     `json:"quantity" gorm:"not null;default:0"`
}
