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

// priceUpdateMinQuantity gates UpdatePrice: only purchases above this
// quantity get repriced.
const priceUpdateMinQuantity = 10.0

type PurchaseRepository struct {
	db *database.DB
}

func NewPurchaseRepository(db *database.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create inserts a new purchase after verifying that the referenced product
// and customer exist. The check and the insert run in one transaction so a
// failed reference never leaves a row behind.
func (r *PurchaseRepository) Create(ctx context.Context, req models.CreatePurchase) (*models.Purchase, error) {
	if err := validatePurchase(req); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := referenceExists(ctx, tx, "products", req.ProductID, ErrProductNotFound); err != nil {
		return nil, err
	}
	if err := referenceExists(ctx, tx, "customers", req.CustomerID, ErrCustomerNotFound); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO purchases (product_id, customer_id, quantity, delivery_date, price_per_unit)
		VALUES (?, ?, ?, ?, ?)
	`, req.ProductID, req.CustomerID, req.Quantity, req.DeliveryDate, req.PricePerUnit)
	if err != nil {
		return nil, fmt.Errorf("failed to insert purchase: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read purchase id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	return &models.Purchase{
		ID:           id,
		ProductID:    req.ProductID,
		CustomerID:   req.CustomerID,
		Quantity:     req.Quantity,
		DeliveryDate: req.DeliveryDate,
		PricePerUnit: req.PricePerUnit,
	}, nil
}

// Get returns the purchase with the given id
func (r *PurchaseRepository) Get(ctx context.Context, id int64) (*models.Purchase, error) {
	var p models.Purchase
	err := r.db.QueryRowContext(ctx, `
		SELECT id, product_id, customer_id, quantity, delivery_date, price_per_unit
		FROM purchases WHERE id = ?
	`, id).Scan(&p.ID, &p.ProductID, &p.CustomerID, &p.Quantity, &p.DeliveryDate, &p.PricePerUnit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPurchaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase: %w", err)
	}

	return &p, nil
}

// List returns a page of purchases in insertion order
func (r *PurchaseRepository) List(ctx context.Context, skip, limit int) ([]models.Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, customer_id, quantity, delivery_date, price_per_unit
		FROM purchases
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	return scanPurchases(rows)
}

// Update replaces every field of the purchase with the given id. Reference
// checks match Create.
func (r *PurchaseRepository) Update(ctx context.Context, id int64, req models.CreatePurchase) (*models.Purchase, error) {
	if err := validatePurchase(req); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := referenceExists(ctx, tx, "purchases", id, ErrPurchaseNotFound); err != nil {
		return nil, err
	}
	if err := referenceExists(ctx, tx, "products", req.ProductID, ErrProductNotFound); err != nil {
		return nil, err
	}
	if err := referenceExists(ctx, tx, "customers", req.CustomerID, ErrCustomerNotFound); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE purchases
		SET product_id = ?, customer_id = ?, quantity = ?, delivery_date = ?, price_per_unit = ?
		WHERE id = ?
	`, req.ProductID, req.CustomerID, req.Quantity, req.DeliveryDate, req.PricePerUnit, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase update: %w", err)
	}

	return &models.Purchase{
		ID:           id,
		ProductID:    req.ProductID,
		CustomerID:   req.CustomerID,
		Quantity:     req.Quantity,
		DeliveryDate: req.DeliveryDate,
		PricePerUnit: req.PricePerUnit,
	}, nil
}

// Delete removes the purchase with the given id
func (r *PurchaseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

// DeleteAll removes every purchase and returns the number of deleted rows
func (r *PurchaseRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM purchases`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchases: %w", err)
	}

	return res.RowsAffected()
}

// Generate inserts count synthetic purchases referencing existing products
// and customers. Fails when either table is empty.
func (r *PurchaseRepository) Generate(ctx context.Context, count int, gen *datagen.Generator) ([]models.Purchase, error) {
	productIDs, err := r.tableIDs(ctx, "products")
	if err != nil {
		return nil, err
	}
	customerIDs, err := r.tableIDs(ctx, "customers")
	if err != nil {
		return nil, err
	}
	if len(productIDs) == 0 || len(customerIDs) == 0 {
		return nil, ErrNoReferenceRows
	}

	purchases := make([]models.Purchase, 0, count)
	for i := 0; i < count; i++ {
		created, err := r.Create(ctx, gen.Purchase(productIDs, customerIDs))
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, *created)
	}

	return purchases, nil
}

// Details returns all purchases joined with product and customer names
func (r *PurchaseRepository) Details(ctx context.Context) ([]models.PurchaseDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.product_id, p.customer_id, p.quantity, p.delivery_date, p.price_per_unit,
		       pr.name, c.name
		FROM purchases p
		JOIN products pr ON pr.id = p.product_id
		JOIN customers c ON c.id = p.customer_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase details: %w", err)
	}
	defer rows.Close()

	var details []models.PurchaseDetail
	for rows.Next() {
		var d models.PurchaseDetail
		err := rows.Scan(
			&d.ID, &d.ProductID, &d.CustomerID, &d.Quantity, &d.DeliveryDate, &d.PricePerUnit,
			&d.ProductName, &d.CustomerName,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// UpdatePrice sets a new price per unit on a purchase, but only when its
// quantity exceeds priceUpdateMinQuantity. Returns whether the price was
// actually changed.
func (r *PurchaseRepository) UpdatePrice(ctx context.Context, id int64, newPrice float64) (bool, error) {
	if newPrice <= 0 {
		return false, &ValidationError{Field: "price_per_unit"}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var quantity float64
	err = tx.QueryRowContext(ctx, `SELECT quantity FROM purchases WHERE id = ?`, id).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrPurchaseNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch purchase quantity: %w", err)
	}

	if quantity <= priceUpdateMinQuantity {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `UPDATE purchases SET price_per_unit = ? WHERE id = ?`, newPrice, id); err != nil {
		return false, fmt.Errorf("failed to update price: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit price update: %w", err)
	}

	return true, nil
}

// GroupByProduct sums purchased quantity per product. Products without
// purchases do not appear in the result.
func (r *PurchaseRepository) GroupByProduct(ctx context.Context) ([]models.ProductTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, SUM(quantity)
		FROM purchases
		GROUP BY product_id
		ORDER BY product_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to group purchases: %w", err)
	}
	defer rows.Close()

	var totals []models.ProductTotal
	for rows.Next() {
		var t models.ProductTotal
		if err := rows.Scan(&t.ProductID, &t.TotalQuantity); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// ByCustomer returns the purchase history of one customer with line totals
func (r *PurchaseRepository) ByCustomer(ctx context.Context, customerID int64) ([]models.CustomerPurchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pr.name, p.quantity, p.quantity * p.price_per_unit, p.delivery_date
		FROM purchases p
		JOIN products pr ON pr.id = p.product_id
		WHERE p.customer_id = ?
		ORDER BY p.id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.CustomerPurchase
	for rows.Next() {
		var cp models.CustomerPurchase
		if err := rows.Scan(&cp.ProductName, &cp.Quantity, &cp.TotalPrice, &cp.DeliveryDate); err != nil {
			return nil, err
		}
		purchases = append(purchases, cp)
	}

	return purchases, rows.Err()
}

// ProductSales aggregates quantity, revenue and purchase count for one
// product. All values are zero when the product has no purchases.
func (r *PurchaseRepository) ProductSales(ctx context.Context, productID int64) (*models.ProductSales, error) {
	var s models.ProductSales
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(quantity * price_per_unit), 0),
		       COUNT(*)
		FROM purchases
		WHERE product_id = ?
	`, productID).Scan(&s.TotalQuantitySold, &s.TotalRevenue, &s.NumberOfPurchases)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product sales: %w", err)
	}

	return &s, nil
}

func (r *PurchaseRepository) tableIDs(ctx context.Context, table string) ([]int64, error) {
	// table names come from fixed call sites, never from input
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func validatePurchase(req models.CreatePurchase) error {
	if req.ProductID <= 0 {
		return &ValidationError{Field: "product_id"}
	}
	if req.CustomerID <= 0 {
		return &ValidationError{Field: "customer_id"}
	}
	if req.Quantity <= 0 {
		return &ValidationError{Field: "quantity"}
	}
	if req.PricePerUnit <= 0 {
		return &ValidationError{Field: "price_per_unit"}
	}
	if req.DeliveryDate.IsZero() {
		return &ValidationError{Field: "delivery_date"}
	}

	return nil
}

func referenceExists(ctx context.Context, tx *sql.Tx, table string, id int64, notFound error) error {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = ?`, table)
	if err := tx.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return fmt.Errorf("failed to check %s reference: %w", table, err)
	}
	if n == 0 {
		return notFound
	}

	return nil
}

func scanPurchases(rows *sql.Rows) ([]models.Purchase, error) {
	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(&p.ID, &p.ProductID, &p.CustomerID, &p.Quantity, &p.DeliveryDate, &p.PricePerUnit)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}
