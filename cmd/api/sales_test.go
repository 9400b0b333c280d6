// File: cmd/api/sales_test.go
// Description: tests for the sale creation handler

package main

import (
	"math"
	"net/http"
	"testing"

	"github.com/mflores-dev/posapi/internal/data"
)

func TestCreateSaleWholesalePricing(t *testing.T) {
	db, testUtils := newTestDB(t)

	app := newTestApp(t)
	app.models = data.NewModels(db)

	userID, _ := createTestUser(t, testUtils, "cashier@example.com", "Casey", "Till", "cashier", true)
	cookie := sessionCookieFor(t, app, userID, "cashier")

	// Regular 5.00, wholesale 4.00 from 10 units.
	productID, err := testUtils.SeedTestProduct("Bulk Rice 1kg", "RICE-1", 5.00, 4.00, 10)
	if err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	type saleResponse struct {
		Sale struct {
			TotalAmount float64 `json:"total_amount"`
			ChangeDue   float64 `json:"change_due"`
			Wholesale   bool    `json:"wholesale"`
			Items       []struct {
				ProductID int64   `json:"product_id"`
				Quantity  int64   `json:"quantity"`
				UnitPrice float64 `json:"unit_price"`
			} `json:"items"`
		} `json:"sale"`
	}

	t.Run("Wholesale price applied at the minimum quantity", func(t *testing.T) {
		payload := map[string]interface{}{
			"cash_paid": 50.00,
			"items": []map[string]interface{}{
				{"product_id": productID, "quantity": 10},
			},
		}

		rr := makeRequest(t, app, "POST", "/v1/sales", payload, []*http.Cookie{cookie})
		checkResponseCode(t, http.StatusCreated, rr.Code)

		var response saleResponse
		parseJSONResponse(t, rr, &response)

		if !response.Sale.Wholesale {
			t.Error("Expected the sale to be flagged wholesale")
		}
		if response.Sale.TotalAmount != 40.00 {
			t.Errorf("Expected total 40.00, got %.2f", response.Sale.TotalAmount)
		}
		if response.Sale.Items[0].UnitPrice != 4.00 {
			t.Errorf("Expected wholesale unit price 4.00, got %.2f", response.Sale.Items[0].UnitPrice)
		}
	})

	t.Run("Same product on mixed lines keeps per-line prices", func(t *testing.T) {
		// One line at the wholesale minimum, one below it. Each line must
		// keep its own price and the total must equal the sum of the lines.
		payload := map[string]interface{}{
			"cash_paid": 100.00,
			"items": []map[string]interface{}{
				{"product_id": productID, "quantity": 10},
				{"product_id": productID, "quantity": 2},
			},
		}

		rr := makeRequest(t, app, "POST", "/v1/sales", payload, []*http.Cookie{cookie})
		checkResponseCode(t, http.StatusCreated, rr.Code)

		var response saleResponse
		parseJSONResponse(t, rr, &response)

		if len(response.Sale.Items) != 2 {
			t.Fatalf("Expected 2 sale items, got %d", len(response.Sale.Items))
		}
		if response.Sale.Items[0].UnitPrice != 4.00 {
			t.Errorf("Expected wholesale price 4.00 on the first line, got %.2f", response.Sale.Items[0].UnitPrice)
		}
		if response.Sale.Items[1].UnitPrice != 5.00 {
			t.Errorf("Expected regular price 5.00 on the second line, got %.2f", response.Sale.Items[1].UnitPrice)
		}

		var lineSum float64
		for _, item := range response.Sale.Items {
			lineSum += item.UnitPrice * float64(item.Quantity)
		}
		if math.Abs(lineSum-response.Sale.TotalAmount) > 0.001 {
			t.Errorf("Line sum %.2f does not match total %.2f", lineSum, response.Sale.TotalAmount)
		}
		if response.Sale.TotalAmount != 50.00 {
			t.Errorf("Expected total 50.00, got %.2f", response.Sale.TotalAmount)
		}
	})

	t.Run("Insufficient cash", func(t *testing.T) {
		payload := map[string]interface{}{
			"cash_paid": 1.00,
			"items": []map[string]interface{}{
				{"product_id": productID, "quantity": 2},
			},
		}

		rr := makeRequest(t, app, "POST", "/v1/sales", payload, []*http.Cookie{cookie})
		checkResponseCode(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Unknown product", func(t *testing.T) {
		payload := map[string]interface{}{
			"cash_paid": 10.00,
			"items": []map[string]interface{}{
				{"product_id": 999999, "quantity": 1},
			},
		}

		rr := makeRequest(t, app, "POST", "/v1/sales", payload, []*http.Cookie{cookie})
		checkResponseCode(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
