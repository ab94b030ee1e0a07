package models

import (
	"time"
)

// Product represents a product sold by the sales office
type Product struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Manufacturer string `json:"manufacturer" db:"manufacturer"`
	Unit         string `json:"unit" db:"unit"`
}

// Customer represents a buying organization
type Customer struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Address       string `json:"address" db:"address"`
	Phone         string `json:"phone" db:"phone"`
	ContactPerson string `json:"contact_person" db:"contact_person"`
}

// Purchase represents a single product purchase by a customer
type Purchase struct {
	ID           int64     `json:"id" db:"id"`
	ProductID    int64     `json:"product_id" db:"product_id"`
	CustomerID   int64     `json:"customer_id" db:"customer_id"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	DeliveryDate time.Time `json:"delivery_date" db:"delivery_date"`
	PricePerUnit float64   `json:"price_per_unit" db:"price_per_unit"`
}

// Total returns the line total. It is always computed, never stored.
func (p Purchase) Total() float64 {
	return p.Quantity * p.PricePerUnit
}

// CreateProduct holds the fields required to insert a new product
type CreateProduct struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Unit         string `json:"unit"`
}

// CreateCustomer holds the fields required to insert a new customer
type CreateCustomer struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
}

// CreatePurchase holds the fields required to insert a new purchase
type CreatePurchase struct {
	ProductID    int64     `json:"product_id"`
	CustomerID   int64     `json:"customer_id"`
	Quantity     float64   `json:"quantity"`
	DeliveryDate time.Time `json:"delivery_date"`
	PricePerUnit float64   `json:"price_per_unit"`
}

// PurchaseDetail joins a purchase with the names of its product and customer
type PurchaseDetail struct {
	Purchase
	ProductName  string `json:"product_name" db:"product_name"`
	CustomerName string `json:"customer_name" db:"customer_name"`
}

// CustomerPurchase is one row of the customer purchase history report
type CustomerPurchase struct {
	ProductName  string    `json:"product_name" db:"product_name"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	TotalPrice   float64   `json:"total_price" db:"total_price"`
	DeliveryDate time.Time `json:"delivery_date" db:"delivery_date"`
}

// ProductSales aggregates all purchases of a single product
type ProductSales struct {
	TotalQuantitySold float64 `json:"total_quantity_sold" db:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
	NumberOfPurchases int64   `json:"number_of_purchases" db:"number_of_purchases"`
}

// ProductTotal is one row of the purchases-grouped-by-product report
type ProductTotal struct {
	ProductID     int64   `json:"product_id" db:"product_id"`
	TotalQuantity float64 `json:"total_quantity" db:"total_quantity"`
}

// Customer sort fields accepted by the sorted customer listing
const (
	SortByName    = "name"
	SortByAddress = "address"
	SortByPhone   = "phone"
)
