package response

import (
	"testing"
	"time"

	"mecanica_os/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	created := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	generated := created.Add(2 * time.Hour)
	o := entities.ServiceOrder{
		ID:        "order-1",
		Code:      "OS-AAAA1111",
		VehicleID: "vehicle-1",
		Status:    entities.OrderStatusAguardandoAprovacao,
		Services:  []entities.IncludedService{{ID: "inc-1", ServiceID: "svc-1", Name: "Troca de óleo", Price: 120}},
		Items:     []entities.IncludedItem{{ID: "inc-2", StockItemID: "stk-1", Name: "Filtro", Price: 35, Quantity: 2, Kind: entities.ItemKindPeca}},
		Budget:    &entities.Budget{Total: 190, GeneratedAt: generated},
		History:   entities.HistoryTimestamps{CreatedAt: created},
	}

	resp := FromServiceOrder(o)
	if resp.ID != "order-1" || resp.Status != "aguardando_aprovacao" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Services) != 1 || resp.Services[0].Name != "Troca de óleo" {
		t.Fatalf("unexpected services: %+v", resp.Services)
	}
	if len(resp.Items) != 1 || resp.Items[0].Kind != "peca" || resp.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if resp.Budget == nil || resp.Budget.Total != 190 {
		t.Fatalf("unexpected budget: %+v", resp.Budget)
	}
	if resp.ExecutionStartedAt != nil || resp.DeliveredAt != nil {
		t.Fatalf("unexpected stamps: %+v", resp)
	}
}

func TestFromServiceOrder_EmptyLines(t *testing.T) {
	o := *entities.NewServiceOrder("order-1", "OS-AAAA1111", "vehicle-1", time.Now().UTC())
	resp := FromServiceOrder(o)
	// Empty slices, not null, so clients always see arrays.
	if resp.Services == nil || resp.Items == nil {
		t.Fatalf("expected empty slices, got nils")
	}
	if resp.Budget != nil {
		t.Fatalf("expected no budget")
	}
}

func TestFromServiceOrderPublic(t *testing.T) {
	created := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	o := entities.ServiceOrder{
		ID:        "order-1",
		Code:      "OS-AAAA1111",
		VehicleID: "vehicle-1",
		Status:    entities.OrderStatusEmExecucao,
		Budget:    &entities.Budget{Total: 250, GeneratedAt: created.Add(time.Hour)},
		History:   entities.HistoryTimestamps{CreatedAt: created},
	}

	resp := FromServiceOrderPublic(o)
	if resp.Code != "OS-AAAA1111" || resp.Status != "em_execucao" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Budget == nil || resp.Budget.Total != 250 {
		t.Fatalf("unexpected budget: %+v", resp.Budget)
	}
}
