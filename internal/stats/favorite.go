// Package stats computes derived analytics over the sales schema.
package stats

import (
	"errors"

	"github.com/anlewis/rails-engine/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a missing customer
	ErrNotFound = errors.New("customer not found")

	// ErrNoFavorite marks a customer with no successful transactions at all
	ErrNoFavorite = errors.New("customer has no favorite merchant")
)

// merchantCount is one row of the pushed-down aggregation
type merchantCount struct {
	MerchantID uint
	Count      int64
}

// FavoriteMerchant returns the merchant with the most successful transactions
// across the customer's invoices.
//
// The count per merchant is computed in the database; the maximum is picked
// here. Tie order between merchants with equal counts is implementation
// defined: the earlier row in group-by output wins.
func FavoriteMerchant(db *gorm.DB, customerID uint) (*model.Merchant, error) {
	var customer model.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var counts []merchantCount
	err := db.Model(&model.Transaction{}).
		Select("invoices.merchant_id AS merchant_id, COUNT(transactions.id) AS count").
		Joins("JOIN invoices ON invoices.id = transactions.invoice_id").
		Where("invoices.customer_id = ?", customerID).
		Where("transactions.result = ?", model.TransactionSuccess).
		Group("invoices.merchant_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, ErrNoFavorite
	}

	best := counts[0]
	for _, mc := range counts[1:] {
		if mc.Count > best.Count {
			best = mc
		}
	}

	var merchant model.Merchant
	if err := db.First(&merchant, best.MerchantID).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}
