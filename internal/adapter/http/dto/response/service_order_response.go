package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
)

type IncludedServiceResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type IncludedItemResponse struct {
	ID          string  `json:"id"`
	StockItemID string  `json:"stock_item_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Kind        string  `json:"kind"`
}

type BudgetResponse struct {
	Total       float64   `json:"total"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ServiceOrderResponse struct {
	ID                 string                    `json:"id"`
	Code               string                    `json:"code"`
	VehicleID          string                    `json:"vehicle_id"`
	Status             string                    `json:"status"`
	Services           []IncludedServiceResponse `json:"services"`
	Items              []IncludedItemResponse    `json:"items"`
	Budget             *BudgetResponse           `json:"budget,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	ExecutionStartedAt *time.Time                `json:"execution_started_at,omitempty"`
	FinalizedAt        *time.Time                `json:"finalized_at,omitempty"`
	DeliveredAt        *time.Time                `json:"delivered_at,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:                 o.ID,
		Code:               o.Code,
		VehicleID:          o.VehicleID,
		Status:             string(o.Status),
		Services:           make([]IncludedServiceResponse, 0, len(o.Services)),
		Items:              make([]IncludedItemResponse, 0, len(o.Items)),
		CreatedAt:          o.History.CreatedAt,
		ExecutionStartedAt: o.History.ExecutionStartedAt,
		FinalizedAt:        o.History.FinalizedAt,
		DeliveredAt:        o.History.DeliveredAt,
	}
	for _, s := range o.Services {
		resp.Services = append(resp.Services, IncludedServiceResponse{
			ID:        s.ID,
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
		})
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, IncludedItemResponse{
			ID:          it.ID,
			StockItemID: it.StockItemID,
			Name:        it.Name,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Kind:        string(it.Kind),
		})
	}
	if o.Budget != nil {
		resp.Budget = &BudgetResponse{Total: o.Budget.Total, GeneratedAt: o.Budget.GeneratedAt}
	}
	return resp
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

// PublicLookupResponse deliberately exposes less than the staff view.
type PublicLookupResponse struct {
	Code        string          `json:"code"`
	Status      string          `json:"status"`
	Budget      *BudgetResponse `json:"budget,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
}

func FromServiceOrderPublic(o entities.ServiceOrder) PublicLookupResponse {
	resp := PublicLookupResponse{
		Code:        o.Code,
		Status:      string(o.Status),
		CreatedAt:   o.History.CreatedAt,
		DeliveredAt: o.History.DeliveredAt,
	}
	if o.Budget != nil {
		resp.Budget = &BudgetResponse{Total: o.Budget.Total, GeneratedAt: o.Budget.GeneratedAt}
	}
	return resp
}
