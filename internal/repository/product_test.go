package repository

import (
	"context"
	"testing"

	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.CreateProduct{
		Name:         "Desk Lamp",
		Manufacturer: "Elite Industries",
		Unit:         "piece",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	second, err := repo.Create(ctx, models.CreateProduct{
		Name:         "Whiteboard",
		Manufacturer: "Core Manufacturing",
		Unit:         "set",
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestProductCreateValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	_, err := repo.Create(context.Background(), models.CreateProduct{
		Manufacturer: "Acme",
		Unit:         "kg",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestProductGetNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewProductRepository(db).Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E"}
	for _, name := range names {
		_, err := repo.Create(ctx, models.CreateProduct{Name: name, Manufacturer: "M", Unit: "u"})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].Name)
	assert.Equal(t, "C", page[1].Name)

	all, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, len(names))
}

func TestProductUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created := createTestProduct(t, db)

	updated, err := repo.Update(ctx, created.ID, models.CreateProduct{
		Name:         "Widget v2",
		Manufacturer: "Acme",
		Unit:         "box",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", fetched.Name)
	assert.Equal(t, "box", fetched.Unit)

	_, err = repo.Update(ctx, 9999, models.CreateProduct{Name: "x", Manufacturer: "y", Unit: "z"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created := createTestProduct(t, db)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrProductNotFound)
}

func TestProductDeleteAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	count, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	createTestProduct(t, db)
	createTestProduct(t, db)

	count, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	all, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	matching := models.CreateProduct{Name: "Lamp", Manufacturer: "Acme", Unit: "piece"}
	_, err := repo.Create(ctx, matching)
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.CreateProduct{Name: "Lamp", Manufacturer: "Acme", Unit: "box"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.CreateProduct{Name: "Lamp", Manufacturer: "Globex", Unit: "piece"})
	require.NoError(t, err)

	filtered, err := repo.Filter(ctx, "Acme", "piece")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Acme", filtered[0].Manufacturer)
	assert.Equal(t, "piece", filtered[0].Unit)
}

func TestProductGenerate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	generated, err := repo.Generate(ctx, 5, datagen.New(1))
	require.NoError(t, err)
	require.Len(t, generated, 5)

	for _, p := range generated {
		assert.Positive(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Manufacturer)
		assert.NotEmpty(t, p.Unit)
	}

	all, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
