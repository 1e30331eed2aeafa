package stats

import (
	"testing"

	"github.com/anlewis/rails-engine/internal/model"
	"github.com/glebarez/sqlite"
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
		&model.Transaction{},
	))
	return db
}

func createInvoice(t *testing.T, db *gorm.DB, customerID, merchantID uint) uint {
	t.Helper()

	invoice := model.Invoice{CustomerID: customerID, MerchantID: merchantID, Status: "shipped"}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice.ID
}

func createTransaction(t *testing.T, db *gorm.DB, invoiceID uint, result string) {
	t.Helper()

	require.NoError(t, db.Create(&model.Transaction{
		InvoiceID:        invoiceID,
		CreditCardNumber: "4654405418249632",
		Result:           result,
	}).Error)
}

func TestFavoriteMerchant(t *testing.T) {
	db := setupDB(t)

	customer := model.Customer{FirstName: "Joey", LastName: "Ondricka"}
	require.NoError(t, db.Create(&customer).Error)

	merchantA := model.Merchant{Name: "Schroeder-Jerde"}
	merchantB := model.Merchant{Name: "Klein, Rempel and Jones"}
	require.NoError(t, db.Create(&merchantA).Error)
	require.NoError(t, db.Create(&merchantB).Error)

	// Two successful transactions through A, one through B
	invoice1 := createInvoice(t, db, customer.ID, merchantA.ID)
	invoice2 := createInvoice(t, db, customer.ID, merchantA.ID)
	invoice3 := createInvoice(t, db, customer.ID, merchantB.ID)
	createTransaction(t, db, invoice1, model.TransactionSuccess)
	createTransaction(t, db, invoice2, model.TransactionSuccess)
	createTransaction(t, db, invoice3, model.TransactionSuccess)

	favorite, err := FavoriteMerchant(db, customer.ID)
	require.NoError(t, err)
	require.Equal(t, merchantA.ID, favorite.ID)
	require.Equal(t, "Schroeder-Jerde", favorite.Name)
}

func TestFavoriteMerchantIgnoresFailedTransactions(t *testing.T) {
	db := setupDB(t)

	customer := model.Customer{FirstName: "Cecelia", LastName: "Osinski"}
	require.NoError(t, db.Create(&customer).Error)

	merchantA := model.Merchant{Name: "Willms and Sons"}
	merchantB := model.Merchant{Name: "Cummings-Thiel"}
	require.NoError(t, db.Create(&merchantA).Error)
	require.NoError(t, db.Create(&merchantB).Error)

	// B has more transactions overall but only one succeeded
	invoiceA := createInvoice(t, db, customer.ID, merchantA.ID)
	invoiceB := createInvoice(t, db, customer.ID, merchantB.ID)
	createTransaction(t, db, invoiceA, model.TransactionSuccess)
	createTransaction(t, db, invoiceA, model.TransactionSuccess)
	createTransaction(t, db, invoiceB, model.TransactionSuccess)
	createTransaction(t, db, invoiceB, "failed")
	createTransaction(t, db, invoiceB, "failed")
	createTransaction(t, db, invoiceB, "failed")

	favorite, err := FavoriteMerchant(db, customer.ID)
	require.NoError(t, err)
	require.Equal(t, merchantA.ID, favorite.ID)
}

func TestFavoriteMerchantOnlyCountsOwnInvoices(t *testing.T) {
	db := setupDB(t)

	customer := model.Customer{FirstName: "Mariah", LastName: "Toy"}
	other := model.Customer{FirstName: "Stan", LastName: "Mills"}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&other).Error)

	merchantA := model.Merchant{Name: "Bechtelar, Jones and Stokes"}
	merchantB := model.Merchant{Name: "Kozey Group"}
	require.NoError(t, db.Create(&merchantA).Error)
	require.NoError(t, db.Create(&merchantB).Error)

	// The other customer's heavy traffic with B must not count
	mine := createInvoice(t, db, customer.ID, merchantA.ID)
	theirs := createInvoice(t, db, other.ID, merchantB.ID)
	createTransaction(t, db, mine, model.TransactionSuccess)
	createTransaction(t, db, theirs, model.TransactionSuccess)
	createTransaction(t, db, theirs, model.TransactionSuccess)
	createTransaction(t, db, theirs, model.TransactionSuccess)

	favorite, err := FavoriteMerchant(db, customer.ID)
	require.NoError(t, err)
	require.Equal(t, merchantA.ID, favorite.ID)
}

func TestFavoriteMerchantNoSuccessfulTransactions(t *testing.T) {
	db := setupDB(t)

	customer := model.Customer{FirstName: "Leanne", LastName: "Braun"}
	require.NoError(t, db.Create(&customer).Error)

	merchant := model.Merchant{Name: "Pollich and Sons"}
	require.NoError(t, db.Create(&merchant).Error)

	invoice := createInvoice(t, db, customer.ID, merchant.ID)
	createTransaction(t, db, invoice, "failed")

	_, err := FavoriteMerchant(db, customer.ID)
	require.ErrorIs(t, err, ErrNoFavorite)
}

func TestFavoriteMerchantMissingCustomer(t *testing.T) {
	db := setupDB(t)

	_, err := FavoriteMerchant(db, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}
