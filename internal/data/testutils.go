// File: internal/data/testutils.go
// Description: Database testing utilities for integration tests

package data

import (
	"database/sql"
	"fmt"
	"time"
)

// TestUtils provides utility functions for testing database operations
type TestUtils struct {
	DB *sql.DB
}

// NewTestUtils creates a new TestUtils instance
func NewTestUtils(db *sql.DB) *TestUtils {
	return &TestUtils{DB: db}
}

// TruncateAllTables removes all data from all tables in the correct order to avoid foreign key constraints
func (tu *TestUtils) TruncateAllTables() error {
	tables := []string{
		"sale_items",
		"sales",
		"tokens",
		"products",
		"users",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)
		_, err := tu.DB.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// ResetIdentitySequences resets all identity sequences to start from 1
func (tu *TestUtils) ResetIdentitySequences() error {
	sequences := []string{
		"users_id_seq",
		"products_id_seq",
		"sales_id_seq",
		"sale_items_id_seq",
	}

	for _, seq := range sequences {
		query := fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq)
		_, err := tu.DB.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to reset sequence %s: %w", seq, err)
		}
	}

	return nil
}

// CleanDatabase truncates all tables and resets sequences for a clean test environment
func (tu *TestUtils) CleanDatabase() error {
	if err := tu.TruncateAllTables(); err != nil {
		return err
	}
	if err := tu.ResetIdentitySequences(); err != nil {
		return err
	}
	return nil
}

// SeedTestUser creates a test user and returns the user ID
func (tu *TestUtils) SeedTestUser(email, firstName, lastName, role string, passwordHash []byte, isActive bool) (int64, error) {
	query := `
		INSERT INTO users (email, first_name, last_name, role, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var userID int64
	err := tu.DB.QueryRow(query, email, firstName, lastName, role, passwordHash, isActive).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed test user: %w", err)
	}

	return userID, nil
}

// SeedTestProduct creates a test product and returns the product ID
func (tu *TestUtils) SeedTestProduct(name, sku string, price, wholesalePrice float64, minWholesaleQty int64) (int64, error) {
	query := `
		INSERT INTO products (name, sku, price, wholesale_price, min_wholesale_qty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var productID int64
	err := tu.DB.QueryRow(query, name, sku, price, wholesalePrice, minWholesaleQty).Scan(&productID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed test product: %w", err)
	}

	return productID, nil
}

// SeedTestSale creates a test sale at the given timestamp and returns the sale ID
func (tu *TestUtils) SeedTestSale(userID int64, totalAmount float64, wholesale bool, createdAt time.Time) (int64, error) {
	query := `
		INSERT INTO sales (user_id, total_amount, cash_paid, change_due, wholesale, created_at)
		VALUES ($1, $2, $2, 0, $3, $4)
		RETURNING id
	`

	var saleID int64
	err := tu.DB.QueryRow(query, userID, totalAmount, wholesale, createdAt).Scan(&saleID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed test sale: %w", err)
	}

	return saleID, nil
}
