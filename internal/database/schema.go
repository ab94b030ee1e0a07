package database

import "fmt"

// mysqlSchema is the canonical schema for production deployments.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(100) NOT NULL,
	    manufacturer VARCHAR(100) NOT NULL,
	    unit VARCHAR(50) NOT NULL,
	    INDEX idx_name (name),
	    INDEX idx_manufacturer (manufacturer)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS customers (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(100) NOT NULL,
	    address VARCHAR(200) NOT NULL,
	    phone VARCHAR(50) NOT NULL,
	    contact_person VARCHAR(100) NOT NULL,
	    INDEX idx_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS purchases (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    product_id BIGINT NOT NULL,
	    customer_id BIGINT NOT NULL,
	    quantity DOUBLE NOT NULL,
	    delivery_date TIMESTAMP NOT NULL,
	    price_per_unit DOUBLE NOT NULL,
	    FOREIGN KEY (product_id) REFERENCES products(id),
	    FOREIGN KEY (customer_id) REFERENCES customers(id),
	    INDEX idx_product_id (product_id),
	    INDEX idx_customer_id (customer_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// sqliteSchema mirrors the MySQL schema for the sqlite3 driver, which is
// used for local setups and tests.
var sqliteSchema = []string{
	`PRAGMA foreign_keys = ON`,

	`CREATE TABLE IF NOT EXISTS products (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    manufacturer TEXT NOT NULL,
	    unit TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS customers (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    address TEXT NOT NULL,
	    phone TEXT NOT NULL,
	    contact_person TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS purchases (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    product_id INTEGER NOT NULL REFERENCES products(id),
	    customer_id INTEGER NOT NULL REFERENCES customers(id),
	    quantity REAL NOT NULL,
	    delivery_date TIMESTAMP NOT NULL,
	    price_per_unit REAL NOT NULL
	)`,
}

// SetupSchema creates the products, customers and purchases tables
func (db *DB) SetupSchema() error {
	statements, err := db.schemaStatements()
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// DropSchema removes all tables, children first
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS purchases",
		"DROP TABLE IF EXISTS customers",
		"DROP TABLE IF EXISTS products",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (db *DB) schemaStatements() ([]string, error) {
	switch db.Driver {
	case "mysql":
		return mysqlSchema, nil
	case "sqlite3":
		return sqliteSchema, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", db.Driver)
	}
}
