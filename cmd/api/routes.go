// File: cmd/api/routes.go
// Description: route table for the API.
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *app) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	// Session lifecycle. Login and logout are public, the session check
	// requires a valid cookie.
	router.HandlerFunc(http.MethodPost, "/v1/session", app.createSessionHandler)
	router.HandlerFunc(http.MethodGet, "/v1/session", app.authenticate(app.checkSessionHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/session", app.deleteSessionHandler)

	// Users.
	router.HandlerFunc(http.MethodPost, "/v1/users", app.registerUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/activated", app.activateUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/users/me", app.authenticate(app.showCurrentUserHandler))

	// Products.
	router.HandlerFunc(http.MethodGet, "/v1/products", app.authenticate(app.listProductsHandler))
	router.HandlerFunc(http.MethodGet, "/v1/products/:id", app.authenticate(app.showProductHandler))
	router.HandlerFunc(http.MethodPost, "/v1/products", app.requireRole("admin", app.createProductHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/products/:id", app.requireRole("admin", app.updateProductHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/products/:id", app.requireRole("admin", app.deleteProductHandler))

	// Sales.
	router.HandlerFunc(http.MethodPost, "/v1/sales", app.authenticate(app.createSaleHandler))
	router.HandlerFunc(http.MethodGet, "/v1/sales/:id", app.authenticate(app.showSaleHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/sales/:id", app.requireRole("admin", app.deleteSaleHandler))

	// Reports.
	router.HandlerFunc(http.MethodGet, "/v1/reports/vendor-sales", app.authenticate(app.vendorSalesHandler))
	router.HandlerFunc(http.MethodGet, "/v1/reports/wholesale-stats", app.requireRole("admin", app.wholesaleStatsHandler))
	router.HandlerFunc(http.MethodGet, "/v1/reports/wholesale-comparison", app.authenticate(app.wholesaleComparisonHandler))

	// Stock entries come from the hosted backend service.
	router.HandlerFunc(http.MethodGet, "/v1/stock-entries", app.authenticate(app.listStockEntriesHandler))

	// Printer proxy.
	router.HandlerFunc(http.MethodGet, "/v1/printers", app.authenticate(app.listPrintersHandler))
	router.HandlerFunc(http.MethodGet, "/v1/printers/health", app.authenticate(app.printerHealthHandler))
	router.HandlerFunc(http.MethodPost, "/v1/print-silently", app.authenticate(app.printSilentlyHandler))

	// Exports.
	router.HandlerFunc(http.MethodPost, "/v1/exports/sales", app.requireRole("admin", app.exportSalesHandler))

	// Media delivery. The legacy prefixes all share the uploads root and stay
	// public so product images render without a session.
	router.HandlerFunc(http.MethodGet, "/uploads/*filepath", app.mediaFileHandler)
	router.HandlerFunc(http.MethodGet, "/media/*filepath", app.mediaFileHandler)
	router.HandlerFunc(http.MethodGet, "/cdn/*filepath", app.mediaFileHandler)
	router.HandlerFunc(http.MethodGet, "/v1/serve-image", app.serveImageHandler)

	return app.recoverPanic(app.rateLimit(app.enableCORS(router)))
}
