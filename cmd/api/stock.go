// File: cmd/api/stock.go
// Description: stock entry lookup backed by the hosted backend service.
package main

import (
	"errors"
	"net/http"

	"github.com/mflores-dev/posapi/internal/baas"
	"github.com/mflores-dev/posapi/internal/validator"
)

// listStockEntriesHandler handles GET /v1/stock-entries?product_id=N. Entries
// live in the hosted backend rather than the local database, so this handler
// is a thin pass-through to the service client.
func (app *app) listStockEntriesHandler(w http.ResponseWriter, r *http.Request) {
	v := validator.New()

	productID := app.getSingleIntQueryParameter(r.URL.Query(), "product_id", 0, v)
	if !v.IsValid() || productID <= 0 {
		app.badRequestResponse(w, r, errors.New("product_id must be a positive integer"))
		return
	}

	if app.baas == nil {
		app.serverErrorResponse(w, r, errors.New("stock service is not configured"))
		return
	}

	entries, err := app.baas.StockEntries(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, baas.ErrUnavailable):
			app.upstreamUnreachableResponse(w, r, err)
		default:
			// A non-2xx from the backend is a failed query, not a
			// transport failure.
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"stock_entries": entries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
