package repository

import (
	"context"
	"testing"

	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.CreateCustomer{
		Name:          "Tech Corp",
		Address:       "10 Park St., Kazan",
		Phone:         "+7(900)1234567",
		ContactPerson: "Ivan Petrov",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCustomerCreateValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.Create(context.Background(), models.CreateCustomer{
		Name:    "Tech Corp",
		Address: "10 Park St., Kazan",
		Phone:   "+7(900)1234567",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "contact_person", vErr.Field)
}

func TestCustomerUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created := createTestCustomer(t, db)

	updated, err := repo.Update(ctx, created.ID, models.CreateCustomer{
		Name:          "Bob Ltd",
		Address:       "2 Main St",
		Phone:         "556",
		ContactPerson: "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob Ltd", updated.Name)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 Main St", fetched.Address)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrCustomerNotFound)
}

func TestCustomerSorted(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	addresses := []string{"9 River St., Samara", "1 Main St., Moscow", "5 Lake St., Kazan"}
	for _, addr := range addresses {
		_, err := repo.Create(ctx, models.CreateCustomer{
			Name:          "Customer at " + addr,
			Address:       addr,
			Phone:         "555",
			ContactPerson: "Anna",
		})
		require.NoError(t, err)
	}

	sorted, err := repo.Sorted(ctx, models.SortByAddress)
	require.NoError(t, err)
	require.Len(t, sorted, 3)

	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Address, sorted[i].Address)
	}
}

func TestCustomerSortedInvalidField(t *testing.T) {
	db := newTestDB(t)

	_, err := NewCustomerRepository(db).Sorted(context.Background(), "contact_person")
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestCustomerDeleteAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	count, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	createTestCustomer(t, db)

	count, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCustomerGenerate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	generated, err := repo.Generate(context.Background(), 3, datagen.New(7))
	require.NoError(t, err)
	require.Len(t, generated, 3)

	for _, c := range generated {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Address)
		assert.NotEmpty(t, c.Phone)
		assert.NotEmpty(t, c.ContactPerson)
	}
}
