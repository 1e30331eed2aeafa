package relation

import (
	"testing"

	"github.com/anlewis/rails-engine/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Merchant{},
		&model.Invoice{},
		&model.Item{},
		&model.InvoiceItem{},
		&model.Transaction{},
	))
	return db
}

// seeds one customer with invoices at two merchants, transactions on each
// invoice, and an item per merchant
func seedSchema(t *testing.T, db *gorm.DB) (model.Customer, model.Merchant, model.Merchant) {
	t.Helper()

	customer := model.Customer{FirstName: "Parker", LastName: "Daugherty"}
	require.NoError(t, db.Create(&customer).Error)

	merchant1 := model.Merchant{Name: "Schroeder-Jerde"}
	merchant2 := model.Merchant{Name: "Tillman Group"}
	require.NoError(t, db.Create(&merchant1).Error)
	require.NoError(t, db.Create(&merchant2).Error)

	invoice1 := model.Invoice{CustomerID: customer.ID, MerchantID: merchant1.ID, Status: "shipped"}
	invoice2 := model.Invoice{CustomerID: customer.ID, MerchantID: merchant2.ID, Status: "shipped"}
	require.NoError(t, db.Create(&invoice1).Error)
	require.NoError(t, db.Create(&invoice2).Error)

	item := model.Item{Name: "Item Qui Esse", MerchantID: merchant1.ID, UnitPrice: decimal.NewFromFloat(751.07)}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, db.Create(&model.InvoiceItem{
		InvoiceID: invoice1.ID, ItemID: item.ID, Quantity: 5, UnitPrice: item.UnitPrice,
	}).Error)

	transactions := []model.Transaction{
		{InvoiceID: invoice1.ID, Result: model.TransactionSuccess},
		{InvoiceID: invoice1.ID, Result: "failed"},
		{InvoiceID: invoice2.ID, Result: model.TransactionSuccess},
	}
	require.NoError(t, db.Create(&transactions).Error)

	return customer, merchant1, merchant2
}

func TestForCustomerInvoices(t *testing.T) {
	db := setupDB(t)
	customer, merchant1, merchant2 := seedSchema(t, db)

	related, err := ForCustomer(db, customer.ID, "invoices")
	require.NoError(t, err)

	invoices, ok := related.([]model.Invoice)
	require.True(t, ok)
	require.Len(t, invoices, 2)

	merchantIDs := []uint{invoices[0].MerchantID, invoices[1].MerchantID}
	require.ElementsMatch(t, []uint{merchant1.ID, merchant2.ID}, merchantIDs)
}

func TestForCustomerTransactions(t *testing.T) {
	db := setupDB(t)
	customer, _, _ := seedSchema(t, db)

	// Transactions hang off invoices, not the customer; the listing is the
	// union across every invoice, spanning both merchants.
	related, err := ForCustomer(db, customer.ID, "transactions")
	require.NoError(t, err)

	transactions, ok := related.([]model.Transaction)
	require.True(t, ok)
	require.Len(t, transactions, 3)

	seen := map[uint]bool{}
	for _, tx := range transactions {
		require.False(t, seen[tx.ID], "transaction %d listed twice", tx.ID)
		seen[tx.ID] = true
	}
}

func TestForCustomerExcludesOtherCustomers(t *testing.T) {
	db := setupDB(t)
	customer, merchant1, _ := seedSchema(t, db)

	other := model.Customer{FirstName: "Sylvester", LastName: "Nader"}
	require.NoError(t, db.Create(&other).Error)
	invoice := model.Invoice{CustomerID: other.ID, MerchantID: merchant1.ID, Status: "shipped"}
	require.NoError(t, db.Create(&invoice).Error)
	require.NoError(t, db.Create(&model.Transaction{InvoiceID: invoice.ID, Result: model.TransactionSuccess}).Error)

	related, err := ForCustomer(db, customer.ID, "transactions")
	require.NoError(t, err)
	require.Len(t, related.([]model.Transaction), 3)
}

func TestForCustomerInvalidRelation(t *testing.T) {
	db := setupDB(t)
	customer, _, _ := seedSchema(t, db)

	_, err := ForCustomer(db, customer.ID, "bogus")
	require.ErrorIs(t, err, ErrInvalidRelation)

	// Merchant relations are not valid on customers
	_, err = ForCustomer(db, customer.ID, "items")
	require.ErrorIs(t, err, ErrInvalidRelation)
}

func TestForCustomerMissingOwner(t *testing.T) {
	db := setupDB(t)

	_, err := ForCustomer(db, 9999, "invoices")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestForMerchantItems(t *testing.T) {
	db := setupDB(t)
	_, merchant1, merchant2 := seedSchema(t, db)

	related, err := ForMerchant(db, merchant1.ID, "items")
	require.NoError(t, err)

	items, ok := related.([]model.Item)
	require.True(t, ok)
	require.Len(t, items, 1)
	require.Equal(t, "Item Qui Esse", items[0].Name)

	related, err = ForMerchant(db, merchant2.ID, "items")
	require.NoError(t, err)
	require.Empty(t, related.([]model.Item))
}

func TestForMerchantInvoices(t *testing.T) {
	db := setupDB(t)
	_, merchant1, _ := seedSchema(t, db)

	related, err := ForMerchant(db, merchant1.ID, "invoices")
	require.NoError(t, err)
	require.Len(t, related.([]model.Invoice), 1)
}

func TestForMerchantInvalidRelation(t *testing.T) {
	db := setupDB(t)
	_, merchant1, _ := seedSchema(t, db)

	_, err := ForMerchant(db, merchant1.ID, "transactions")
	require.ErrorIs(t, err, ErrInvalidRelation)
}

func TestForMerchantMissingOwner(t *testing.T) {
	db := setupDB(t)

	_, err := ForMerchant(db, 9999, "items")
	require.ErrorIs(t, err, ErrNotFound)
}
