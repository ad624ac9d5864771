package registry

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

var ErrMissingRegistryServiceURL = errors.New("missing REGISTRY_SERVICE_URL")

// HTTPVehicleGateway resolves vehicle ownership from the client/vehicle
// registry service.
//
// Supported env vars:
//   - REGISTRY_SERVICE_URL (e.g. http://registry-service:8080/v1)
//   - REGISTRY_GATEWAY_MOCK (fabricated owners for local runs)
type HTTPVehicleGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IVehicleGateway = (*HTTPVehicleGateway)(nil)

func NewHTTPVehicleGateway(baseURL string) (*HTTPVehicleGateway, error) {
	if isRegistryGatewayMockEnabled() {
		log.Printf("[registry][gateway] mock mode enabled")
		return &HTTPVehicleGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[registry][gateway] missing REGISTRY_SERVICE_URL")
		return nil, ErrMissingRegistryServiceURL
	}
	return &HTTPVehicleGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (g *HTTPVehicleGateway) GetVehicleOwner(ctx context.Context, vehicleID string) (interfaces.VehicleOwner, error) {
	if g.mockMode {
		return interfaces.VehicleOwner{CustomerID: "mock-customer", Document: "00000000000"}, nil
	}

	url := fmt.Sprintf("%s/vehicles/%s/owner", g.baseURL, vehicleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.VehicleOwner{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return interfaces.VehicleOwner{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return interfaces.VehicleOwner{}, nil
	}
	if resp.StatusCode >= 300 {
		return interfaces.VehicleOwner{}, fmt.Errorf("registry service returned status %d for vehicle %s", resp.StatusCode, vehicleID)
	}

	var owner interfaces.VehicleOwner
	if err := json.NewDecoder(resp.Body).Decode(&owner); err != nil {
		return interfaces.VehicleOwner{}, err
	}
	return owner, nil
}

func isRegistryGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("REGISTRY_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
