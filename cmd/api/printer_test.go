// File: cmd/api/printer_test.go
// Description: tests for the printer proxy handlers

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mflores-dev/posapi/internal/printer"
)

func TestPrinterHealthHandler(t *testing.T) {
	app := newTestApp(t)

	t.Run("Reachable driver", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"printers":[]}`))
		}))
		defer upstream.Close()

		app.printer = printer.NewClient(upstream.URL)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/printers/health", nil)
		app.printerHealthHandler(rr, req)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var response struct {
			Status int    `json:"status"`
			Sample string `json:"sample"`
		}
		parseJSONResponse(t, rr, &response)

		if response.Status != http.StatusOK {
			t.Errorf("Expected upstream status 200, got %d", response.Status)
		}
		if response.Sample == "" {
			t.Error("Expected a body sample, got an empty string")
		}
	})

	t.Run("Unreachable driver", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := upstream.URL
		upstream.Close()

		app.printer = printer.NewClient(url)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/printers/health", nil)
		app.printerHealthHandler(rr, req)

		checkResponseCode(t, http.StatusBadGateway, rr.Code)
	})
}

func TestPrintSilentlyHandler(t *testing.T) {
	app := newTestApp(t)

	t.Run("Relays body and status verbatim", func(t *testing.T) {
		var receivedBody []byte
		var receivedContentType string

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedBody, _ = io.ReadAll(r.Body)
			receivedContentType = r.Header.Get("Content-Type")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"job":"queued"}`))
		}))
		defer upstream.Close()

		app.printer = printer.NewClient(upstream.URL)

		payload := []byte(`{"printer":"EPSON","lines":["hello"]}`)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/print-silently", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		app.printSilentlyHandler(rr, req)

		checkResponseCode(t, http.StatusCreated, rr.Code)

		if !bytes.Equal(receivedBody, payload) {
			t.Errorf("Driver received body %q, want %q", receivedBody, payload)
		}
		if receivedContentType != "application/json" {
			t.Errorf("Driver received content type %q, want application/json", receivedContentType)
		}
		if rr.Body.String() != `{"job":"queued"}` {
			t.Errorf("Unexpected relayed body: %q", rr.Body.String())
		}
	})

	t.Run("Driver errors pass through unchanged", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "printer offline", http.StatusServiceUnavailable)
		}))
		defer upstream.Close()

		app.printer = printer.NewClient(upstream.URL)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/print-silently", bytes.NewReader([]byte(`{}`)))
		app.printSilentlyHandler(rr, req)

		checkResponseCode(t, http.StatusServiceUnavailable, rr.Code)
		if rr.Body.String() != "printer offline\n" {
			t.Errorf("Expected driver error body relayed verbatim, got %q", rr.Body.String())
		}
	})

	t.Run("Transport failure maps to bad gateway", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := upstream.URL
		upstream.Close()

		app.printer = printer.NewClient(url)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/print-silently", bytes.NewReader([]byte(`{}`)))
		app.printSilentlyHandler(rr, req)

		checkResponseCode(t, http.StatusBadGateway, rr.Code)
	})
}
