package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is the persisted result of one billing run: net activity of a store
// over a pair of date windows, taxed. Rows are immutable after creation; there
// is no update path. InvoiceNumber is caller-supplied and deliberately not
// unique at the engine level; duplicate protection is the caller's job.
type Invoice struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	StoreID       uint            `json:"store_id" gorm:"index;not null"`
	Store         Store           `json:"store" gorm:"foreignKey:StoreID"`
	InvoiceNumber string          `json:"invoice_number" gorm:"index;not null"`
	IssueDate     datatypes.Date  `json:"issue_date" gorm:"not null"`
	DueDate       datatypes.Date  `json:"due_date" gorm:"not null"`
	TotalNet      decimal.Decimal `json:"total_net" gorm:"type:decimal(10,2)"`
	TotalTax      decimal.Decimal `json:"total_tax" gorm:"type:decimal(10,2)"`
	TotalGross    decimal.Decimal `json:"total_gross" gorm:"type:decimal(10,2)"`
	CreatedAt     time.Time       `json:"created_at"`
}
