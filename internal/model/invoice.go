package model

import (
	"time"
)

// Invoice ties one customer to one merchant. Customers reach merchants only
// through invoices; there is no direct customer-merchant foreign key.
type Invoice struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	MerchantID uint      `json:"merchant_id" gorm:"index;not null"`
	Status     string    `json:"status" gorm:"type:varchar(50)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:InvoiceID"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:InvoiceID"`
}
