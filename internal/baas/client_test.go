// File: internal/baas/client_test.go
package baas

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStockEntries(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/stock_entries" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("product_id"); got != "eq.12" {
			t.Errorf("expected product_id=eq.12, got %q", got)
		}
		if got := r.Header.Get("apikey"); got != "service-key" {
			t.Errorf("expected apikey header, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 3, "product_id": 12, "quantity": 40, "unit_cost": 7.25, "created_at": "2026-02-10T09:00:00Z"},
			{"id": 1, "product_id": 12, "quantity": 10, "unit_cost": 7.10, "created_at": "2026-01-05T09:00:00Z"}
		]`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "service-key")

	entries, err := client.StockEntries(context.Background(), 12)
	if err != nil {
		t.Fatalf("StockEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 3 || entries[0].Quantity != 40 {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
}

func TestStockEntriesStatusError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "bad-key")

	_, err := client.StockEntries(context.Background(), 12)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", statusErr.Status)
	}
}

func TestStockEntriesUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := NewClient(upstream.URL, "service-key")

	if _, err := client.StockEntries(context.Background(), 12); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
