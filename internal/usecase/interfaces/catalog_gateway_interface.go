package interfaces

import "context"

// CatalogService is the service-catalog record snapshotted onto orders.
type CatalogService struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// IServiceCatalogGateway abstracts the catalog service owning service
// definitions and prices.
type IServiceCatalogGateway interface {
	GetServiceByID(ctx context.Context, id string) (CatalogService, error)
}

// VehicleOwner identifies the customer owning a vehicle.
type VehicleOwner struct {
	CustomerID string `json:"customer_id"`
	Document   string `json:"document"`
}

// IVehicleGateway resolves vehicle ownership. Used by the actor capability
// check and by the public lookup; the core protocol never touches vehicles.
type IVehicleGateway interface {
	GetVehicleOwner(ctx context.Context, vehicleID string) (VehicleOwner, error)
}
