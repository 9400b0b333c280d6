// File: cmd/api/stock_test.go
// Description: tests for the stock entry lookup handler

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mflores-dev/posapi/internal/baas"
)

func TestListStockEntriesHandler(t *testing.T) {
	app := newTestApp(t)

	t.Run("Missing product_id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/stock-entries", nil)
		app.listStockEntriesHandler(rr, req)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Non-numeric product_id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/stock-entries?product_id=abc", nil)
		app.listStockEntriesHandler(rr, req)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Entries from the hosted backend", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("product_id"); got != "eq.7" {
				t.Errorf("Expected product_id filter eq.7, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":1,"product_id":7,"quantity":12,"unit_cost":3.25,"created_at":"2025-11-01T10:00:00Z"}]`))
		}))
		defer upstream.Close()

		app.baas = baas.NewClient(upstream.URL, "test-key")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/stock-entries?product_id=7", nil)
		app.listStockEntriesHandler(rr, req)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var response struct {
			StockEntries []struct {
				ProductID int64   `json:"product_id"`
				Quantity  float64 `json:"quantity"`
			} `json:"stock_entries"`
		}
		parseJSONResponse(t, rr, &response)

		if len(response.StockEntries) != 1 {
			t.Fatalf("Expected 1 stock entry, got %d", len(response.StockEntries))
		}
		if response.StockEntries[0].ProductID != 7 {
			t.Errorf("Expected product_id 7, got %d", response.StockEntries[0].ProductID)
		}
	})

	t.Run("Backend error status", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "permission denied", http.StatusForbidden)
		}))
		defer upstream.Close()

		app.baas = baas.NewClient(upstream.URL, "test-key")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/stock-entries?product_id=7", nil)
		app.listStockEntriesHandler(rr, req)
		checkResponseCode(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Unreachable backend", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := upstream.URL
		upstream.Close()

		app.baas = baas.NewClient(url, "test-key")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/stock-entries?product_id=7", nil)
		app.listStockEntriesHandler(rr, req)
		checkResponseCode(t, http.StatusBadGateway, rr.Code)
	})
}
