package stock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"mecanica_os/internal/usecase/interfaces"
)

var ErrMissingStockServiceURL = errors.New("missing STOCK_SERVICE_URL")

// HTTPStockGateway talks to the external stock service.
//
// Supported env vars:
//   - STOCK_SERVICE_URL (e.g. http://stock-service:8080/v1)
//   - STOCK_GATEWAY_MOCK (local-friendly in-memory stock)
type HTTPStockGateway struct {
	baseURL string
	client  *http.Client

	mockMode bool
	mu       sync.Mutex
	mockQty  map[string]int
}

var _ interfaces.IStockGateway = (*HTTPStockGateway)(nil)

func NewHTTPStockGateway(baseURL string) (*HTTPStockGateway, error) {
	if isStockGatewayMockEnabled() {
		log.Printf("[stock][gateway] mock mode enabled")
		return &HTTPStockGateway{mockMode: true, mockQty: map[string]int{}}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[stock][gateway] missing STOCK_SERVICE_URL")
		return nil, ErrMissingStockServiceURL
	}
	return &HTTPStockGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (g *HTTPStockGateway) CheckAvailability(ctx context.Context, stockItemID string, quantity int) (bool, error) {
	if g.mockMode {
		return g.mockQuantity(stockItemID) >= quantity, nil
	}

	url := fmt.Sprintf("%s/stock-items/%s/availability?quantity=%d", g.baseURL, stockItemID, quantity)
	var out struct {
		Available bool `json:"available"`
	}
	if err := g.getJSON(ctx, url, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return false, nil
		}
		return false, err
	}
	return out.Available, nil
}

func (g *HTTPStockGateway) GetStockItem(ctx context.Context, stockItemID string) (interfaces.StockItem, error) {
	if g.mockMode {
		return interfaces.StockItem{
			ID:       stockItemID,
			Name:     "mock item " + stockItemID,
			Price:    10,
			Quantity: g.mockQuantity(stockItemID),
			Kind:     "peca",
		}, nil
	}

	url := fmt.Sprintf("%s/stock-items/%s", g.baseURL, stockItemID)
	var item interfaces.StockItem
	if err := g.getJSON(ctx, url, &item); err != nil {
		if errors.Is(err, errNotFound) {
			return interfaces.StockItem{}, nil
		}
		return interfaces.StockItem{}, err
	}
	return item, nil
}

func (g *HTTPStockGateway) UpdateStockQuantity(ctx context.Context, stockItemID string, newQuantity int) error {
	if g.mockMode {
		g.mu.Lock()
		g.mockQty[stockItemID] = newQuantity
		g.mu.Unlock()
		log.Printf("[stock][gateway] mock quantity updated item_id=%s quantity=%d", stockItemID, newQuantity)
		return nil
	}

	body, err := json.Marshal(map[string]int{"quantity": newQuantity})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/stock-items/%s/quantity", g.baseURL, stockItemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("stock service returned status %d updating item %s", resp.StatusCode, stockItemID)
	}
	return nil
}

var errNotFound = errors.New("stock service resource not found")

func (g *HTTPStockGateway) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("stock service returned status %d for %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

const defaultMockQuantity = 100

func (g *HTTPStockGateway) mockQuantity(stockItemID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if q, ok := g.mockQty[stockItemID]; ok {
		return q
	}
	g.mockQty[stockItemID] = defaultMockQuantity
	return defaultMockQuantity
}

func isStockGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STOCK_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
