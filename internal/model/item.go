package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents an item sold by a merchant
type Item struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description string          `json:"description" gorm:"type:text"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2)"`
	MerchantID  uint            `json:"merchant_id" gorm:"index;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
