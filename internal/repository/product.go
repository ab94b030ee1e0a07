package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/models"
)

type ProductRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product and returns it with its assigned id
func (r *ProductRepository) Create(ctx context.Context, req models.CreateProduct) (*models.Product, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if req.Manufacturer == "" {
		return nil, &ValidationError{Field: "manufacturer"}
	}
	if req.Unit == "" {
		return nil, &ValidationError{Field: "unit"}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO products (name, manufacturer, unit)
		VALUES (?, ?, ?)
	`, req.Name, req.Manufacturer, req.Unit)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read product id: %w", err)
	}

	return &models.Product{
		ID:           id,
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Unit:         req.Unit,
	}, nil
}

// Get returns the product with the given id
func (r *ProductRepository) Get(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, manufacturer, unit FROM products WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Manufacturer, &p.Unit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return &p, nil
}

// List returns a page of products in insertion order
func (r *ProductRepository) List(ctx context.Context, skip, limit int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, manufacturer, unit
		FROM products
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Update replaces every field of the product with the given id
func (r *ProductRepository) Update(ctx context.Context, id int64, req models.CreateProduct) (*models.Product, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if req.Manufacturer == "" {
		return nil, &ValidationError{Field: "manufacturer"}
	}
	if req.Unit == "" {
		return nil, &ValidationError{Field: "unit"}
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET name = ?, manufacturer = ?, unit = ? WHERE id = ?
	`, req.Name, req.Manufacturer, req.Unit, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// An update with identical values also reports zero affected rows on
		// MySQL, so re-check existence before reporting not found.
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
	}

	return &models.Product{
		ID:           id,
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Unit:         req.Unit,
	}, nil
}

// Delete removes the product with the given id
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DeleteAll removes every product and returns the number of deleted rows
func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}

	return res.RowsAffected()
}

// Generate inserts count synthetic products
func (r *ProductRepository) Generate(ctx context.Context, count int, gen *datagen.Generator) ([]models.Product, error) {
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		created, err := r.Create(ctx, gen.Product())
		if err != nil {
			return nil, err
		}
		products = append(products, *created)
	}

	return products, nil
}

// Filter returns products matching both manufacturer and unit exactly
func (r *ProductRepository) Filter(ctx context.Context, manufacturer, unit string) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, manufacturer, unit
		FROM products
		WHERE manufacturer = ? AND unit = ?
		ORDER BY id
	`, manufacturer, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Manufacturer, &p.Unit); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
