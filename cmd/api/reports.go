// File: cmd/api/reports.go
// Description: dashboard aggregation endpoints.
package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/mflores-dev/posapi/internal/data"
)

// vendorSalesHandler handles GET /v1/reports/vendor-sales. It summarizes the
// authenticated seller's sales for the current local day.
func (app *app) vendorSalesHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	summary, err := app.models.Reports.VendorDailySales(user.ID, time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"total":   summary.Total,
		"count":   summary.Count,
		"sales":   summary.Sales,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// wholesaleStatsHandler handles GET /v1/reports/wholesale-stats.
func (app *app) wholesaleStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.models.Reports.WholesalePricing()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "stats": stats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// wholesaleComparisonHandler handles GET /v1/reports/wholesale-comparison.
// The window query parameter accepts day, week or month and defaults to month.
func (app *app) wholesaleComparisonHandler(w http.ResponseWriter, r *http.Request) {
	window := app.getSingleQueryParameter(r.URL.Query(), "window", data.WindowMonth)

	comparison, err := app.models.Reports.WholesaleVsRegular(window, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidWindow):
			app.badRequestResponse(w, r, errors.New("window must be one of day, week or month"))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "comparison": comparison}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
