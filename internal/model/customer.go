package model

import (
	"time"
)

// Customer represents the customer model stored in the database.
// Timestamps are kept out of the JSON representation on purpose: list and
// find responses expose only id and name fields.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"type:varchar(100);not null;index"`
	LastName  string    `json:"last_name" gorm:"type:varchar(100);not null;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:CustomerID"`
}
