// Package relation lists the collections associated with a customer or
// merchant by relation name.
package relation

import (
	"errors"

	"github.com/anlewis/rails-engine/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a missing owner record
	ErrNotFound = errors.New("owner not found")

	// ErrInvalidRelation marks a relation name not declared for the owner type
	ErrInvalidRelation = errors.New("invalid relation")
)

// loader fetches one named relation for an owner id
type loader func(db *gorm.DB, ownerID uint) (interface{}, error)

var customerRelations = map[string]loader{
	"invoices":     customerInvoices,
	"transactions": customerTransactions,
}

var merchantRelations = map[string]loader{
	"items":    merchantItems,
	"invoices": merchantInvoices,
}

// ForCustomer lists the named relation of a customer. A missing customer
// fails with ErrNotFound; an undeclared relation name with ErrInvalidRelation.
func ForCustomer(db *gorm.DB, customerID uint, name string) (interface{}, error) {
	if err := ownerExists(db, &model.Customer{}, customerID); err != nil {
		return nil, err
	}
	load, ok := customerRelations[name]
	if !ok {
		return nil, ErrInvalidRelation
	}
	return load(db, customerID)
}

// ForMerchant lists the named relation of a merchant
func ForMerchant(db *gorm.DB, merchantID uint, name string) (interface{}, error) {
	if err := ownerExists(db, &model.Merchant{}, merchantID); err != nil {
		return nil, err
	}
	load, ok := merchantRelations[name]
	if !ok {
		return nil, ErrInvalidRelation
	}
	return load(db, merchantID)
}

func ownerExists(db *gorm.DB, owner interface{}, id uint) error {
	if err := db.First(owner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func customerInvoices(db *gorm.DB, customerID uint) (interface{}, error) {
	invoices := make([]model.Invoice, 0)
	if err := db.Where("customer_id = ?", customerID).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// customerTransactions is the one multi-hop relation: the union of
// transactions across every invoice of the customer.
func customerTransactions(db *gorm.DB, customerID uint) (interface{}, error) {
	transactions := make([]model.Transaction, 0)
	err := db.
		Joins("JOIN invoices ON invoices.id = transactions.invoice_id").
		Where("invoices.customer_id = ?", customerID).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func merchantItems(db *gorm.DB, merchantID uint) (interface{}, error) {
	items := make([]model.Item, 0)
	if err := db.Where("merchant_id = ?", merchantID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func merchantInvoices(db *gorm.DB, merchantID uint) (interface{}, error) {
	invoices := make([]model.Invoice, 0)
	if err := db.Where("merchant_id = ?", merchantID).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
