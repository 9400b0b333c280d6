// File: cmd/api/reports_test.go
// Description: tests for the report handlers

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mflores-dev/posapi/internal/data"
)

func TestWholesaleComparisonWindowValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{
			name:           "Unknown window value",
			url:            "/v1/reports/wholesale-comparison?window=year",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Garbage window value",
			url:            "/v1/reports/wholesale-comparison?window=banana",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.url, nil)
			app.wholesaleComparisonHandler(rr, req)
			checkResponseCode(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestVendorSalesReport(t *testing.T) {
	db, testUtils := newTestDB(t)

	app := newTestApp(t)
	app.models = data.NewModels(db)

	userID, _ := createTestUser(t, testUtils, "vendor@example.com", "Vera", "Dor", "vendor", true)
	otherID, _ := createTestUser(t, testUtils, "other@example.com", "Otto", "Seller", "vendor", true)

	// Two sales today for the vendor, one for someone else.
	if _, err := testUtils.SeedTestSale(userID, 25.00, false, time.Now()); err != nil {
		t.Fatalf("Failed to seed sale: %v", err)
	}
	if _, err := testUtils.SeedTestSale(userID, 10.50, false, time.Now()); err != nil {
		t.Fatalf("Failed to seed sale: %v", err)
	}
	if _, err := testUtils.SeedTestSale(otherID, 99.99, false, time.Now()); err != nil {
		t.Fatalf("Failed to seed sale: %v", err)
	}

	cookie := sessionCookieFor(t, app, userID, "vendor")
	rr := makeRequest(t, app, "GET", "/v1/reports/vendor-sales", nil, []*http.Cookie{cookie})
	checkResponseCode(t, http.StatusOK, rr.Code)

	var response struct {
		Success bool    `json:"success"`
		Total   float64 `json:"total"`
		Count   int     `json:"count"`
	}
	parseJSONResponse(t, rr, &response)

	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.Count != 2 {
		t.Errorf("Expected 2 sales for the vendor today, got %d", response.Count)
	}
	if response.Total != 35.50 {
		t.Errorf("Expected total 35.50, got %.2f", response.Total)
	}
}
