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

type CustomerRepository struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer and returns it with its assigned id
func (r *CustomerRepository) Create(ctx context.Context, req models.CreateCustomer) (*models.Customer, error) {
	if err := validateCustomer(req); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (name, address, phone, contact_person)
		VALUES (?, ?, ?, ?)
	`, req.Name, req.Address, req.Phone, req.ContactPerson)
	if err != nil {
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read customer id: %w", err)
	}

	return &models.Customer{
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
	}, nil
}

// Get returns the customer with the given id
func (r *CustomerRepository) Get(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, phone, contact_person FROM customers WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.ContactPerson)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	return &c, nil
}

// List returns a page of customers in insertion order
func (r *CustomerRepository) List(ctx context.Context, skip, limit int) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, phone, contact_person
		FROM customers
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Update replaces every field of the customer with the given id
func (r *CustomerRepository) Update(ctx context.Context, id int64, req models.CreateCustomer) (*models.Customer, error) {
	if err := validateCustomer(req); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE customers SET name = ?, address = ?, phone = ?, contact_person = ? WHERE id = ?
	`, req.Name, req.Address, req.Phone, req.ContactPerson, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
	}

	return &models.Customer{
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
	}, nil
}

// Delete removes the customer with the given id
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// DeleteAll removes every customer and returns the number of deleted rows
func (r *CustomerRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete customers: %w", err)
	}

	return res.RowsAffected()
}

// Generate inserts count synthetic customers
func (r *CustomerRepository) Generate(ctx context.Context, count int, gen *datagen.Generator) ([]models.Customer, error) {
	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		created, err := r.Create(ctx, gen.Customer())
		if err != nil {
			return nil, err
		}
		customers = append(customers, *created)
	}

	return customers, nil
}

// Sorted returns all customers ordered ascending by one of name, address or phone
func (r *CustomerRepository) Sorted(ctx context.Context, field string) ([]models.Customer, error) {
	switch field {
	case models.SortByName, models.SortByAddress, models.SortByPhone:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSortField, field)
	}

	// field is restricted to a fixed set above, safe to interpolate
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, name, address, phone, contact_person
		FROM customers
		ORDER BY %s, id
	`, field))
	if err != nil {
		return nil, fmt.Errorf("failed to sort customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func validateCustomer(req models.CreateCustomer) error {
	if req.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if req.Address == "" {
		return &ValidationError{Field: "address"}
	}
	if req.Phone == "" {
		return &ValidationError{Field: "phone"}
	}
	if req.ContactPerson == "" {
		return &ValidationError{Field: "contact_person"}
	}

	return nil
}

func scanCustomers(rows *sql.Rows) ([]models.Customer, error) {
	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.ContactPerson); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}
