package model

import (
	"time"
)

// TransactionSuccess is the fixed result value marking a successful transaction.
const TransactionSuccess = "success"

// Transaction records a payment attempt against an invoice
type Transaction struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	InvoiceID        uint      `json:"invoice_id" gorm:"index;not null"`
	CreditCardNumber string    `json:"credit_card_number" gorm:"type:varchar(30)"`
	Result           string    `json:"result" gorm:"type:varchar(20);index;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Successful reports whether the transaction completed with the successful result
func (t *Transaction) Successful() bool {
	return t.Result == TransactionSuccess
}
