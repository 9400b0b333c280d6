// File: cmd/api/printer.go
// Description: proxy endpoints for the receipt printer driver service.
package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/mflores-dev/posapi/internal/printer"
)

// relayPrinterResponse writes a driver response back to the caller verbatim,
// preserving its status code and content type. Downstream errors are the
// driver's to report, so non-2xx statuses pass through unchanged.
func (app *app) relayPrinterResponse(w http.ResponseWriter, resp *printer.Response) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}

// listPrintersHandler handles GET /v1/printers by relaying the driver's
// printer enumeration.
func (app *app) listPrintersHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := app.printer.Forward(r.Context(), http.MethodGet, "/printers", "", nil)
	if err != nil {
		switch {
		case errors.Is(err, printer.ErrUnreachable):
			app.upstreamUnreachableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.relayPrinterResponse(w, resp)
}

// printerHealthHandler handles GET /v1/printers/health. The driver gets a
// short deadline so a hung plugin shows up as unreachable rather than a stuck
// request.
func (app *app) printerHealthHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := app.printer.Health(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, printer.ErrUnreachable):
			app.upstreamUnreachableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sample := resp.Body
	if len(sample) > 256 {
		sample = sample[:256]
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status": resp.Status,
		"sample": string(sample),
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// printSilentlyHandler handles POST /v1/print-silently, forwarding the raw
// request body to the driver without inspecting it. Receipt payload formats
// belong to the driver, not this API.
func (app *app) printSilentlyHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1_048_576))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp, err := app.printer.Forward(r.Context(), http.MethodPost, "/print", r.Header.Get("Content-Type"), bytes.NewReader(body))
	if err != nil {
		switch {
		case errors.Is(err, printer.ErrUnreachable):
			app.upstreamUnreachableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.relayPrinterResponse(w, resp)
}
