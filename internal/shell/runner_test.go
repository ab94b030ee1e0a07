package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ivolkov/salesoffice/internal/config"
	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	db, err := database.NewConnection(&config.DBConfig{
		Driver:       "sqlite3",
		DSN:          ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.SetupSchema())

	out := &bytes.Buffer{}
	runner := NewRunner(
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewPurchaseRepository(db),
		datagen.New(1),
		out,
	)
	return runner, out
}

func TestExecuteProductLifecycle(t *testing.T) {
	runner, out := newTestRunner(t)
	ctx := context.Background()

	runner.Execute(ctx, "product create Widget Acme piece")
	assert.Contains(t, out.String(), `"name": "Widget"`)
	assert.Contains(t, out.String(), `"id": 1`)

	out.Reset()
	runner.Execute(ctx, "product get 1")
	assert.Contains(t, out.String(), `"manufacturer": "Acme"`)

	out.Reset()
	runner.Execute(ctx, "product delete 1")
	assert.Contains(t, out.String(), "product 1 deleted")

	out.Reset()
	runner.Execute(ctx, "product get 1")
	assert.Contains(t, out.String(), "Error executing command: product not found")
}

func TestExecuteUnknownCommandPrintsUsage(t *testing.T) {
	runner, out := newTestRunner(t)

	runner.Execute(context.Background(), "warehouse create")
	assert.Contains(t, out.String(), "Unknown/invalid command")
	assert.Contains(t, out.String(), "product: create, get, get-all")
}

func TestExecuteArgumentCountMessages(t *testing.T) {
	runner, out := newTestRunner(t)
	ctx := context.Background()

	runner.Execute(ctx, "product create Widget")
	assert.Contains(t, out.String(), "Product creation requires: name manufacturer unit")

	out.Reset()
	runner.Execute(ctx, "customer create OnlyName")
	assert.Contains(t, out.String(), "Customer creation requires: name address phone contact_person")

	out.Reset()
	runner.Execute(ctx, "purchase create 1 2 3")
	assert.Contains(t, out.String(), "Purchase creation requires: product_id customer_id quantity delivery_date price_per_unit")

	out.Reset()
	runner.Execute(ctx, "product generate")
	assert.Contains(t, out.String(), "Generate command requires exactly one argument")

	out.Reset()
	runner.Execute(ctx, "product get 1 2")
	assert.Contains(t, out.String(), "get command requires exactly one argument (ID)")
}

func TestExecutePurchaseFlow(t *testing.T) {
	runner, out := newTestRunner(t)
	ctx := context.Background()

	runner.Execute(ctx, "product create Widget Acme piece")
	runner.Execute(ctx, "customer create Bob 1_Main_St 555 Bob")

	out.Reset()
	runner.Execute(ctx, "purchase create 1 1 15 2025-06-01_12:00:00 2.0")
	assert.Contains(t, out.String(), `"quantity": 15`)

	out.Reset()
	runner.Execute(ctx, "query 4 1")
	assert.Contains(t, out.String(), `"total_quantity_sold": 15`)
	assert.Contains(t, out.String(), `"total_revenue": 30`)
	assert.Contains(t, out.String(), `"number_of_purchases": 1`)

	out.Reset()
	runner.Execute(ctx, "query 3 1 5.5")
	assert.Contains(t, out.String(), "purchase 1 price updated")

	out.Reset()
	runner.Execute(ctx, "purchase create 1 1 10 2025-06-01_12:00:00 2.0")
	out.Reset()
	runner.Execute(ctx, "query 3 2 5.5")
	assert.Contains(t, out.String(), "purchase 2 not updated")
}

func TestExecuteInvalidDate(t *testing.T) {
	runner, out := newTestRunner(t)
	ctx := context.Background()

	runner.Execute(ctx, "product create Widget Acme piece")
	runner.Execute(ctx, "customer create Bob 1_Main_St 555 Bob")

	out.Reset()
	runner.Execute(ctx, "purchase create 1 1 15 2025/06/01 2.0")
	assert.Contains(t, out.String(), "invalid date/time format: 2025/06/01")
}

func TestExecuteDeleteAllMessages(t *testing.T) {
	runner, out := newTestRunner(t)
	ctx := context.Background()

	runner.Execute(ctx, "product delete-all")
	assert.Contains(t, out.String(), "nothing to delete")

	runner.Execute(ctx, "product create Widget Acme piece")
	runner.Execute(ctx, "product create Gadget Acme box")

	out.Reset()
	runner.Execute(ctx, "product delete-all")
	assert.Contains(t, out.String(), "deleted 2 products")
}

func TestExecuteGeneratePurchasesPrecondition(t *testing.T) {
	runner, out := newTestRunner(t)

	runner.Execute(context.Background(), "purchase generate 3")
	assert.Contains(t, out.String(), "Error executing command: generating purchases requires at least one product and one customer")
}

func TestRunTerminatesOnExit(t *testing.T) {
	runner, out := newTestRunner(t)

	input := strings.NewReader("product create Widget Acme piece\nexit\nproduct get 1\n")
	require.NoError(t, runner.Run(context.Background(), input))

	// The command after exit must never run
	assert.Contains(t, out.String(), `"name": "Widget"`)
	assert.NotContains(t, out.String(), "product not found")
	assert.Equal(t, 2, strings.Count(out.String(), "Enter command: "))
}
