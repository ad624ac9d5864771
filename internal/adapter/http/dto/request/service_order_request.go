package request

import "strings"

// CreateServiceOrderRequest opens a new order at vehicle intake.
type CreateServiceOrderRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

func (r CreateServiceOrderRequest) ResolveVehicleID() string {
	return strings.TrimSpace(r.VehicleID)
}

// AddServiceRequest attaches a catalog service to an order in diagnosis.
type AddServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// AddItemRequest attaches a stock part/consumable to an order in diagnosis.
type AddItemRequest struct {
	StockItemID string `json:"stock_item_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// SetStatusRequest carries an explicit target status (webhook/system flows).
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
