// File: internal/data/products.go
package data

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mflores-dev/posapi/internal/validator"
)

// ----------------------------------------------------------------------
//
//	Definitions
//
// ----------------------------------------------------------------------

// Product represents an inventory item. WholesalePrice applies once a sale
// line reaches MinWholesaleQty units.
type Product struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	SKU             string    `json:"sku"`
	Price           float64   `json:"price"`
	WholesalePrice  float64   `json:"wholesale_price"`
	MinWholesaleQty int64     `json:"min_wholesale_qty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Version         int       `json:"-"`
}

// ProductModel wraps a sql.DB connection pool.
type ProductModel struct {
	DB *sql.DB
}

// ProductFilter represents filtering criteria for querying products.
type ProductFilter struct {
	Filter   Filter
	Name     string
	MinPrice float64
	MaxPrice float64
}

// ----------------------------------------------------------------------
//
//	Methods
//
// ----------------------------------------------------------------------

// ValidateProduct checks the fields of a Product struct to ensure they meet the required criteria.
func ValidateProduct(v *validator.Validator, product *Product) {
	v.Check(product.Name != "", "name", "must be provided")
	v.Check(len(product.Name) <= 200, "name", "must not be more than 200 bytes long")
	v.Check(product.SKU != "", "sku", "must be provided")
	v.Check(len(product.SKU) <= 64, "sku", "must not be more than 64 bytes long")
	v.Check(product.Price >= 0, "price", "must be a non-negative number")
	v.Check(product.WholesalePrice >= 0, "wholesale_price", "must be a non-negative number")
	v.Check(product.WholesalePrice <= product.Price, "wholesale_price", "must not exceed the regular price")
	v.Check(product.MinWholesaleQty >= 0, "min_wholesale_qty", "must be a non-negative number")
}

// Insert adds a new product to the database.
func (m *ProductModel) Insert(product *Product) error {
	query := `
		INSERT INTO products (name, sku, price, wholesale_price, min_wholesale_qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at, version
	`

	ctx, cancel := getContext()
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query,
		product.Name,
		product.SKU,
		product.Price,
		product.WholesalePrice,
		product.MinWholesaleQty,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt, &product.Version)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateSKU
		}
		return err
	}
	return nil
}

// Get retrieves a product by its ID.
func (m *ProductModel) Get(id int64) (*Product, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, name, sku, price, wholesale_price, min_wholesale_qty, created_at, updated_at, version
		FROM products
		WHERE id = $1
	`

	ctx, cancel := getContext()
	defer cancel()

	product := &Product{}

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.Price,
		&product.WholesalePrice,
		&product.MinWholesaleQty,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return product, nil
}

// Update modifies an existing product, guarded by its version for edit conflicts.
func (m *ProductModel) Update(product *Product) error {
	query := `
		UPDATE products
		SET name = $1, sku = $2, price = $3, wholesale_price = $4, min_wholesale_qty = $5, updated_at = NOW(), version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING updated_at, version
	`

	ctx, cancel := getContext()
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query,
		product.Name,
		product.SKU,
		product.Price,
		product.WholesalePrice,
		product.MinWholesaleQty,
		product.ID,
		product.Version,
	).Scan(&product.UpdatedAt, &product.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEditConflict
		}
		return err
	}
	return nil
}

// Delete removes a product from the database.
func (m *ProductModel) Delete(id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `
		DELETE FROM products
		WHERE id = $1
	`

	ctx, cancel := getContext()
	defer cancel()

	result, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// GetAll retrieves a list of products based on the provided filter and pagination parameters.
func (m *ProductModel) GetAll(filter ProductFilter) ([]*Product, MetaData, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) OVER(), id, name, sku, price, wholesale_price, min_wholesale_qty, created_at, updated_at, version
		FROM products
		WHERE (name ILIKE '%%' || $1 || '%%')
		  AND (price >= $2)
		  AND ($3 = 0 OR price <= $3)
		ORDER BY %s %s, id ASC
		LIMIT $4 OFFSET $5
	`, filter.Filter.SortColumn(), filter.Filter.SortDirection())

	ctx, cancel := getContext()
	defer cancel()

	args := []any{
		filter.Name,
		filter.MinPrice,
		filter.MaxPrice,
		filter.Filter.Limit(),
		filter.Filter.Offset(),
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MetaData{}, err
	}
	defer rows.Close()

	products := []*Product{}
	totalRecords := int64(0)

	for rows.Next() {
		product := &Product{}
		err := rows.Scan(
			&totalRecords,
			&product.ID,
			&product.Name,
			&product.SKU,
			&product.Price,
			&product.WholesalePrice,
			&product.MinWholesaleQty,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.Version,
		)
		if err != nil {
			return nil, MetaData{}, err
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, MetaData{}, err
	}

	meta := CalculateMetaData(totalRecords, filter.Filter.Page, filter.Filter.PageSize)

	return products, meta, nil
}
