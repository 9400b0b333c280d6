// File: cmd/api/sales.go
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/validator"
)

// createSaleHandler handles POST /v1/sales. The sale is attributed to the
// authenticated seller.
func (app *app) createSaleHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CashPaid float64 `json:"cash_paid"`
		Items    []struct {
			ProductID int64 `json:"product_id"`
			Quantity  int64 `json:"quantity"`
		} `json:"items"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	req := &data.CreateSaleRequest{
		UserID:   user.ID,
		CashPaid: input.CashPaid,
		Items:    make([]data.CreateSaleItem, len(input.Items)),
	}
	for i, item := range input.Items {
		req.Items[i] = data.CreateSaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	v := validator.New()
	data.ValidateCreateSaleRequest(v, req)
	if !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	sale, err := app.models.Sales.Insert(req)
	if err != nil {
		var productNotFound *data.ProductNotFoundError
		switch {
		case errors.Is(err, data.ErrInsufficientCash):
			v.AddError("cash_paid", "insufficient cash paid for total amount")
			app.failedValidationResponse(w, r, v.Errors)
		case errors.As(err, &productNotFound):
			v.AddError("items", productNotFound.Error())
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/sales/%d", sale.ID))

	err = app.writeJSON(w, http.StatusCreated, envelope{"sale": sale}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// showSaleHandler handles GET /v1/sales/:id
func (app *app) showSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	sale, err := app.models.Sales.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Sellers may only view their own sales; admins see everything.
	user := app.contextGetUser(r)
	if user.Role != "admin" && sale.UserID != user.ID {
		app.notPermittedResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"sale": sale}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// deleteSaleHandler handles DELETE /v1/sales/:id
func (app *app) deleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Sales.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "sale successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
