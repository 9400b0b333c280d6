// File: cmd/api/products.go
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/validator"
)

// createProductHandler handles POST /v1/products
func (app *app) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name            string  `json:"name"`
		SKU             string  `json:"sku"`
		Price           float64 `json:"price"`
		WholesalePrice  float64 `json:"wholesale_price"`
		MinWholesaleQty int64   `json:"min_wholesale_qty"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product := &data.Product{
		Name:            input.Name,
		SKU:             input.SKU,
		Price:           input.Price,
		WholesalePrice:  input.WholesalePrice,
		MinWholesaleQty: input.MinWholesaleQty,
	}

	v := validator.New()
	if data.ValidateProduct(v, product); !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Products.Insert(product); err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateSKU):
			v.AddError("sku", "a product with this sku already exists")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/products/%d", product.ID))

	if err := app.writeJSON(w, http.StatusCreated, envelope{"product": product}, headers); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// showProductHandler handles GET /v1/products/:id
func (app *app) showProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	product, err := app.models.Products.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"product": product}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// listProductsHandler handles GET /v1/products with optional filters.
func (app *app) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	v := validator.New()

	productSortSafelist := []string{"id", "name", "price", "-id", "-name", "-price"}

	filters := app.readFilters(query, "id", 20, productSortSafelist, v)
	data.ValidateFilters(v, filters)
	if !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	productFilter := data.ProductFilter{
		Filter:   filters,
		Name:     app.getSingleQueryParameter(query, "name", ""),
		MinPrice: float64(app.getSingleIntQueryParameter(query, "min_price", 0, v)),
		MaxPrice: float64(app.getSingleIntQueryParameter(query, "max_price", 0, v)),
	}
	if !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	products, metadata, err := app.models.Products.GetAll(productFilter)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"products": products, "metadata": metadata}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// updateProductHandler handles PATCH /v1/products/:id with partial updates.
func (app *app) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	product, err := app.models.Products.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var input struct {
		Name            *string  `json:"name"`
		SKU             *string  `json:"sku"`
		Price           *float64 `json:"price"`
		WholesalePrice  *float64 `json:"wholesale_price"`
		MinWholesaleQty *int64   `json:"min_wholesale_qty"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.WholesalePrice != nil {
		product.WholesalePrice = *input.WholesalePrice
	}
	if input.MinWholesaleQty != nil {
		product.MinWholesaleQty = *input.MinWholesaleQty
	}

	v := validator.New()
	if data.ValidateProduct(v, product); !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Products.Update(product); err != nil {
		switch {
		case errors.Is(err, data.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"product": product}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// deleteProductHandler handles DELETE /v1/products/:id
func (app *app) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Products.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "product successfully deleted"}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
