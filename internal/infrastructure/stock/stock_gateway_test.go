package stock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPStockGateway(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		if _, err := NewHTTPStockGateway("  "); err != ErrMissingStockServiceURL {
			t.Fatalf("expected ErrMissingStockServiceURL, got %v", err)
		}
	})

	t.Run("mock mode ignores the url", func(t *testing.T) {
		t.Setenv("STOCK_GATEWAY_MOCK", "true")
		g, err := NewHTTPStockGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ok, err := g.CheckAvailability(context.Background(), "stk-1", 50)
		if err != nil || !ok {
			t.Fatalf("expected default mock stock to cover 50, got ok=%v err=%v", ok, err)
		}
		if err := g.UpdateStockQuantity(context.Background(), "stk-1", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok, _ := g.CheckAvailability(context.Background(), "stk-1", 50); ok {
			t.Fatalf("expected updated mock quantity to reject 50")
		}
	})
}

func TestHTTPStockGateway_CheckAvailability(t *testing.T) {
	t.Run("reads the availability flag", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/stock-items/stk-1/availability" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("quantity") != "4" {
				t.Fatalf("unexpected quantity %s", r.URL.Query().Get("quantity"))
			}
			_ = json.NewEncoder(w).Encode(map[string]bool{"available": true})
		}))
		defer srv.Close()

		g, err := NewHTTPStockGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ok, err := g.CheckAvailability(context.Background(), "stk-1", 4)
		if err != nil || !ok {
			t.Fatalf("expected available, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("unknown item reads unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		g, _ := NewHTTPStockGateway(srv.URL)
		ok, err := g.CheckAvailability(context.Background(), "stk-9", 1)
		if err != nil || ok {
			t.Fatalf("expected unavailable without error, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		g, _ := NewHTTPStockGateway(srv.URL)
		if _, err := g.CheckAvailability(context.Background(), "stk-1", 1); err == nil {
			t.Fatalf("expected error on 502")
		}
	})
}

func TestHTTPStockGateway_GetStockItem(t *testing.T) {
	t.Run("decodes the item", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/stock-items/stk-1" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": "stk-1", "name": "Filtro de óleo", "price": 35.0, "quantity": 12, "kind": "peca",
			})
		}))
		defer srv.Close()

		g, _ := NewHTTPStockGateway(srv.URL)
		item, err := g.GetStockItem(context.Background(), "stk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "stk-1" || item.Quantity != 12 || item.Kind != "peca" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("not found reads as zero value", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		g, _ := NewHTTPStockGateway(srv.URL)
		item, err := g.GetStockItem(context.Background(), "stk-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "" {
			t.Fatalf("expected zero value, got %+v", item)
		}
	})
}

func TestHTTPStockGateway_UpdateStockQuantity(t *testing.T) {
	t.Run("puts the new absolute quantity", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/stock-items/stk-1/quantity" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var body map[string]int
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("body decode: %v", err)
			}
			if body["quantity"] != 8 {
				t.Fatalf("unexpected quantity %d", body["quantity"])
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		g, _ := NewHTTPStockGateway(srv.URL)
		if err := g.UpdateStockQuantity(context.Background(), "stk-1", 8); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejection surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer srv.Close()

		g, _ := NewHTTPStockGateway(srv.URL)
		if err := g.UpdateStockQuantity(context.Background(), "stk-1", 8); err == nil {
			t.Fatalf("expected error on 409")
		}
	})
}
