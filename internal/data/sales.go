// File: internal/data/sales.go
package data

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mflores-dev/posapi/internal/validator"
)

// Sale represents a completed transaction rung up by a seller.
type Sale struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	TotalAmount float64    `json:"total_amount"`
	CashPaid    float64    `json:"cash_paid"`
	ChangeDue   float64    `json:"change_due"`
	Wholesale   bool       `json:"wholesale"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []SaleItem `json:"items,omitempty"`
}

// SaleItem represents one line of a sale.
type SaleItem struct {
	ID          int64   `json:"id"`
	SaleID      int64   `json:"sale_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ProductName string  `json:"product_name,omitempty"`
}

// CreateSaleRequest represents the request payload for creating a sale.
type CreateSaleRequest struct {
	UserID   int64
	CashPaid float64
	Items    []CreateSaleItem
}

// CreateSaleItem represents an item in the create sale request.
type CreateSaleItem struct {
	ProductID int64
	Quantity  int64
}

// ProductNotFoundError is returned when a sale references an unknown product.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

// ErrInsufficientCash is returned when the cash paid does not cover the total.
var ErrInsufficientCash = errors.New("insufficient cash provided")

// ValidateCreateSaleRequest checks the fields of the CreateSaleRequest struct.
func ValidateCreateSaleRequest(v *validator.Validator, req *CreateSaleRequest) {
	v.Check(req.CashPaid > 0, "cash_paid", "must be greater than zero")
	v.Check(len(req.Items) > 0, "items", "must contain at least one item")

	for i, item := range req.Items {
		v.Check(item.ProductID > 0, fmt.Sprintf("items[%d].product_id", i), "must be greater than zero")
		v.Check(item.Quantity > 0, fmt.Sprintf("items[%d].quantity", i), "must be greater than zero")
	}
}

// SaleModel wraps a sql.DB connection pool.
type SaleModel struct {
	DB *sql.DB
}

// Insert adds a new sale record to the database along with its items. Unit
// prices come from the products table; the wholesale price applies to a line
// once its quantity reaches the product's minimum wholesale quantity.
func (m *SaleModel) Insert(req *CreateSaleRequest) (*Sale, error) {
	tx, err := m.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ctx, cancel := getContext()
	defer cancel()

	productIDs := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	query := `SELECT id, name, price, wholesale_price, min_wholesale_qty FROM products WHERE id = ANY($1)`
	rows, err := tx.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[int64]*Product)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.WholesalePrice, &p.MinWholesaleQty); err != nil {
			return nil, err
		}
		products[p.ID] = &p
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range productIDs {
		if _, exists := products[id]; !exists {
			return nil, &ProductNotFoundError{ProductID: id}
		}
	}

	// Price each line and flag the sale as wholesale when any line qualifies.
	// Prices are kept per line, not per product: the same product can appear
	// on two lines with only one of them meeting the wholesale minimum.
	var totalAmount float64
	wholesale := false
	unitPrices := make([]float64, len(req.Items))
	for i, item := range req.Items {
		p := products[item.ProductID]
		price := p.Price
		if p.MinWholesaleQty > 0 && item.Quantity >= p.MinWholesaleQty {
			price = p.WholesalePrice
			wholesale = true
		}
		unitPrices[i] = price
		totalAmount += price * float64(item.Quantity)
	}

	if req.CashPaid < totalAmount {
		return nil, ErrInsufficientCash
	}

	sale := &Sale{
		UserID:      req.UserID,
		TotalAmount: totalAmount,
		CashPaid:    req.CashPaid,
		ChangeDue:   req.CashPaid - totalAmount,
		Wholesale:   wholesale,
	}

	insertSaleQuery := `
		INSERT INTO sales (user_id, total_amount, cash_paid, change_due, wholesale)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, insertSaleQuery,
		sale.UserID, sale.TotalAmount, sale.CashPaid, sale.ChangeDue, sale.Wholesale,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return nil, err
	}

	saleItems := make([]SaleItem, 0, len(req.Items))
	for i, item := range req.Items {
		p := products[item.ProductID]

		saleItemQuery := `
			INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`

		saleItem := SaleItem{
			SaleID:      sale.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrices[i],
			ProductName: p.Name,
		}
		err = tx.QueryRowContext(ctx, saleItemQuery,
			sale.ID, item.ProductID, item.Quantity, saleItem.UnitPrice,
		).Scan(&saleItem.ID)
		if err != nil {
			return nil, err
		}

		saleItems = append(saleItems, saleItem)
	}

	sale.Items = saleItems

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return sale, nil
}

// Get retrieves a sale and its items by ID.
func (m *SaleModel) Get(id int64) (*Sale, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	ctx, cancel := getContext()
	defer cancel()

	sale := &Sale{}
	query := `
		SELECT id, user_id, total_amount, cash_paid, change_due, wholesale, created_at
		FROM sales
		WHERE id = $1`

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&sale.ID,
		&sale.UserID,
		&sale.TotalAmount,
		&sale.CashPaid,
		&sale.ChangeDue,
		&sale.Wholesale,
		&sale.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	itemsQuery := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.unit_price, p.name
		FROM sale_items si
		INNER JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY si.id`

	rows, err := m.DB.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item SaleItem
		err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.ProductName)
		if err != nil {
			return nil, err
		}
		sale.Items = append(sale.Items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sale, nil
}

// Delete removes a sale and all its associated items (cascade delete handles this).
func (m *SaleModel) Delete(id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `DELETE FROM sales WHERE id = $1`

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

// SaleExportRecord is a flattened sale line used by the Sheets exporter.
type SaleExportRecord struct {
	SaleID      int64
	Date        string
	Time        string
	SellerEmail string
	SellerName  string
	ProductName string
	UnitPrice   float64
	Quantity    int64
	TotalAmount float64
}

// GetSalesForExport returns flattened sale lines within the given date range.
// Nil bounds are open-ended.
func (m *SaleModel) GetSalesForExport(startDate, endDate *time.Time) ([]*SaleExportRecord, error) {
	query := `
		SELECT s.id, s.created_at, u.email, u.first_name || ' ' || u.last_name,
		       p.name, si.unit_price, si.quantity, si.unit_price * si.quantity
		FROM sales s
		INNER JOIN users u ON u.id = s.user_id
		INNER JOIN sale_items si ON si.sale_id = s.id
		INNER JOIN products p ON p.id = si.product_id
		WHERE ($1::timestamptz IS NULL OR s.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR s.created_at < $2)
		ORDER BY s.created_at, s.id`

	ctx, cancel := getContext()
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*SaleExportRecord{}
	for rows.Next() {
		var rec SaleExportRecord
		var createdAt time.Time
		err := rows.Scan(
			&rec.SaleID,
			&createdAt,
			&rec.SellerEmail,
			&rec.SellerName,
			&rec.ProductName,
			&rec.UnitPrice,
			&rec.Quantity,
			&rec.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		rec.Date = createdAt.Format("2006-01-02")
		rec.Time = createdAt.Format("15:04:05")
		records = append(records, &rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
