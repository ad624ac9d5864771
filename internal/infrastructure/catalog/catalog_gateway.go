package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"mecanica_os/internal/usecase/interfaces"
)

var ErrMissingCatalogServiceURL = errors.New("missing CATALOG_SERVICE_URL")

// HTTPCatalogGateway resolves service definitions from the catalog service.
//
// Supported env vars:
//   - CATALOG_SERVICE_URL (e.g. http://catalog-service:8080/v1)
//   - CATALOG_GATEWAY_MOCK (fabricated services for local runs)
type HTTPCatalogGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IServiceCatalogGateway = (*HTTPCatalogGateway)(nil)

func NewHTTPCatalogGateway(baseURL string) (*HTTPCatalogGateway, error) {
	if isCatalogGatewayMockEnabled() {
		log.Printf("[catalog][gateway] mock mode enabled")
		return &HTTPCatalogGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[catalog][gateway] missing CATALOG_SERVICE_URL")
		return nil, ErrMissingCatalogServiceURL
	}
	return &HTTPCatalogGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (g *HTTPCatalogGateway) GetServiceByID(ctx context.Context, id string) (interfaces.CatalogService, error) {
	if g.mockMode {
		return interfaces.CatalogService{ID: id, Name: "mock service " + id, Price: 50}, nil
	}

	url := fmt.Sprintf("%s/services/%s", g.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.CatalogService{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return interfaces.CatalogService{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return interfaces.CatalogService{}, nil
	}
	if resp.StatusCode >= 300 {
		return interfaces.CatalogService{}, fmt.Errorf("catalog service returned status %d for service %s", resp.StatusCode, id)
	}

	var svc interfaces.CatalogService
	if err := json.NewDecoder(resp.Body).Decode(&svc); err != nil {
		return interfaces.CatalogService{}, err
	}
	return svc, nil
}

func isCatalogGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
