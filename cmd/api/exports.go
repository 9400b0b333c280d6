// File: cmd/api/exports.go
// Description: sales export to Google Sheets.
package main

import (
	"errors"
	"net/http"

	"github.com/mflores-dev/posapi/internal/sheets"
	"github.com/mflores-dev/posapi/internal/validator"
)

// exportSalesHandler handles POST /v1/exports/sales. It pulls sale records for
// the requested date range and writes them into a fresh sheet on the
// configured spreadsheet.
func (app *app) exportSalesHandler(w http.ResponseWriter, r *http.Request) {
	if app.sheetsService == nil {
		app.serverErrorResponse(w, r, errors.New("sheets export is not configured"))
		return
	}

	v := validator.New()
	startDate := app.getSingleDateQueryParameter(r.URL.Query(), "start_date", v)
	endDate := app.getSingleDateQueryParameter(r.URL.Query(), "end_date", v)

	if !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	records, err := app.models.Sales.GetSalesForExport(startDate, endDate)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)
	sheetName := sheets.GenerateSheetName(startDate, endDate)

	rowCount, err := app.sheetsService.ExportSales(sheetName, records, user.Email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message":    "sales exported successfully",
		"sheet_name": sheetName,
		"row_count":  rowCount,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
