package model

import (
	"time"
)

// Merchant represents the merchant model stored in the database
type Merchant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Items    []Item    `json:"items,omitempty" gorm:"foreignKey:MerchantID"`
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:MerchantID"`
}
