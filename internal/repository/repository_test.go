package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ivolkov/salesoffice/internal/config"
	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/models"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory SQLite database with the full schema applied.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewConnection(&config.DBConfig{
		Driver:       "sqlite3",
		DSN:          ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.SetupSchema())
	return db
}

func createTestProduct(t *testing.T, db *database.DB) *models.Product {
	t.Helper()

	product, err := NewProductRepository(db).Create(context.Background(), models.CreateProduct{
		Name:         "Widget",
		Manufacturer: "Acme",
		Unit:         "piece",
	})
	require.NoError(t, err)
	return product
}

func createTestCustomer(t *testing.T, db *database.DB) *models.Customer {
	t.Helper()

	customer, err := NewCustomerRepository(db).Create(context.Background(), models.CreateCustomer{
		Name:          "Bob",
		Address:       "1 Main St",
		Phone:         "555",
		ContactPerson: "Bob",
	})
	require.NoError(t, err)
	return customer
}

func createTestPurchase(t *testing.T, db *database.DB, productID, customerID int64, quantity, price float64) *models.Purchase {
	t.Helper()

	purchase, err := NewPurchaseRepository(db).Create(context.Background(), models.CreatePurchase{
		ProductID:    productID,
		CustomerID:   customerID,
		Quantity:     quantity,
		DeliveryDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		PricePerUnit: price,
	})
	require.NoError(t, err)
	return purchase
}
