// File: internal/data/reports.go
// Purpose: aggregate queries backing the admin and vendor dashboards.
package data

import (
	"database/sql"
	"time"
)

// Report window selectors accepted by the comparison endpoint.
const (
	WindowDay   = "day"
	WindowWeek  = "week"
	WindowMonth = "month"
)

// WindowRange resolves a coarse window selector into a half-open [start, end)
// interval ending now. An empty selector defaults to month.
func WindowRange(selector string, now time.Time) (time.Time, time.Time, error) {
	switch selector {
	case WindowDay:
		return now.AddDate(0, 0, -1), now, nil
	case WindowWeek:
		return now.AddDate(0, 0, -7), now, nil
	case WindowMonth, "":
		return now.AddDate(0, -1, 0), now, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}
}

// DayRange returns the half-open [start, end) interval covering the local
// calendar day containing t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// VendorDailySummary holds one seller's sales for a single local day.
type VendorDailySummary struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
	Sales []*Sale `json:"sales"`
}

// WholesaleStats holds aggregate wholesale pricing figures across products.
type WholesaleStats struct {
	ProductCount       int64   `json:"product_count"`
	AvgWholesalePrice  float64 `json:"avg_wholesale_price"`
	MinWholesalePrice  float64 `json:"min_wholesale_price"`
	MaxWholesalePrice  float64 `json:"max_wholesale_price"`
	AvgDiscountPercent float64 `json:"avg_discount_percent"`
}

// WindowTotals holds totals and counts for one segment of the comparison.
type WindowTotals struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// WholesaleComparison contrasts wholesale and regular sales over a window.
type WholesaleComparison struct {
	Window    string       `json:"window"`
	Wholesale WindowTotals `json:"wholesale"`
	Regular   WindowTotals `json:"regular"`
}

// ReportModel wraps a sql.DB connection pool.
type ReportModel struct {
	DB *sql.DB
}

// VendorDailySales returns the given seller's sales whose timestamp falls
// within the local day containing now, with total and count over exactly
// those rows.
func (m *ReportModel) VendorDailySales(userID int64, now time.Time) (*VendorDailySummary, error) {
	start, end := DayRange(now)

	query := `
		SELECT id, user_id, total_amount, cash_paid, change_due, wholesale, created_at
		FROM sales
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at < $3
		ORDER BY created_at`

	ctx, cancel := getContext()
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &VendorDailySummary{Sales: []*Sale{}}
	for rows.Next() {
		sale := &Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.UserID,
			&sale.TotalAmount,
			&sale.CashPaid,
			&sale.ChangeDue,
			&sale.Wholesale,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		summary.Sales = append(summary.Sales, sale)
		summary.Total += sale.TotalAmount
		summary.Count++
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

// WholesalePricing returns aggregate wholesale pricing statistics over all
// products that carry a wholesale price.
func (m *ReportModel) WholesalePricing() (*WholesaleStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(AVG(wholesale_price), 0),
		       COALESCE(MIN(wholesale_price), 0),
		       COALESCE(MAX(wholesale_price), 0),
		       COALESCE(AVG(CASE WHEN price > 0 THEN (price - wholesale_price) / price * 100 ELSE 0 END), 0)
		FROM products
		WHERE wholesale_price > 0`

	ctx, cancel := getContext()
	defer cancel()

	stats := &WholesaleStats{}
	err := m.DB.QueryRowContext(ctx, query).Scan(
		&stats.ProductCount,
		&stats.AvgWholesalePrice,
		&stats.MinWholesalePrice,
		&stats.MaxWholesalePrice,
		&stats.AvgDiscountPercent,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// WholesaleVsRegular contrasts wholesale and regular sales totals within the
// given window selector (day, week or month; empty defaults to month).
func (m *ReportModel) WholesaleVsRegular(selector string, now time.Time) (*WholesaleComparison, error) {
	start, end, err := WindowRange(selector, now)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT wholesale, COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY wholesale`

	ctx, cancel := getContext()
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cmp := &WholesaleComparison{Window: selector}
	if cmp.Window == "" {
		cmp.Window = WindowMonth
	}

	for rows.Next() {
		var wholesale bool
		var totals WindowTotals
		if err := rows.Scan(&wholesale, &totals.Total, &totals.Count); err != nil {
			return nil, err
		}
		if wholesale {
			cmp.Wholesale = totals
		} else {
			cmp.Regular = totals
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cmp, nil
}
