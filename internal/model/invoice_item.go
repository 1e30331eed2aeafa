package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem joins an invoice to an item with the quantity and the unit
// price at the time of sale
type InvoiceItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	InvoiceID uint            `json:"invoice_id" gorm:"index;not null"`
	ItemID    uint            `json:"item_id" gorm:"index;not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
