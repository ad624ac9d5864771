package entities

import (
	"errors"
	"testing"
	"time"
)

func newTestOrder() *ServiceOrder {
	return NewServiceOrder("order-1", "OS-1A2B3C4D", "vehicle-1", time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
}

// advance walks the order to the requested status through the regular
// transitions, stamping budget and timestamps along the way.
func advance(t *testing.T, o *ServiceOrder, target OrderStatus) {
	t.Helper()
	now := o.History.CreatedAt.Add(time.Hour)
	steps := []struct {
		status OrderStatus
		move   func() error
	}{
		{OrderStatusEmDiagnostico, o.StartDiagnosis},
		{OrderStatusAguardandoAprovacao, func() error { return o.GenerateBudget(now) }},
		{OrderStatusEmExecucao, func() error { return o.BeginExecution(now.Add(time.Hour)) }},
		{OrderStatusFinalizada, func() error { return o.FinalizeExecution(now.Add(2 * time.Hour)) }},
		{OrderStatusEntregue, func() error { return o.Deliver(now.Add(3 * time.Hour)) }},
	}
	for _, step := range steps {
		if o.Status == target {
			return
		}
		if err := step.move(); err != nil {
			t.Fatalf("advancing to %s: %v", step.status, err)
		}
	}
	if o.Status != target {
		t.Fatalf("could not advance to %s, stuck at %s", target, o.Status)
	}
}

func TestNewServiceOrder(t *testing.T) {
	o := newTestOrder()
	if o.Status != OrderStatusRecebida {
		t.Fatalf("expected recebida, got %s", o.Status)
	}
	if o.History.CreatedAt.IsZero() {
		t.Fatalf("expected created_at stamp")
	}
	if o.Budget != nil {
		t.Fatalf("expected no budget on a fresh order")
	}
}

func TestServiceOrder_LineItems(t *testing.T) {
	t.Run("add and remove while editable", func(t *testing.T) {
		o := newTestOrder()
		if err := o.AddService(IncludedService{ID: "inc-1", ServiceID: "svc-1", Name: "Troca de óleo", Price: 120}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := o.AddItem(IncludedItem{ID: "inc-2", StockItemID: "stk-1", Name: "Filtro", Price: 35, Quantity: 2, Kind: ItemKindPeca}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(o.Services) != 1 || len(o.Items) != 1 {
			t.Fatalf("unexpected line counts: %d services, %d items", len(o.Services), len(o.Items))
		}

		if err := o.RemoveService("inc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := o.RemoveItem("inc-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(o.Services) != 0 || len(o.Items) != 0 {
			t.Fatalf("expected empty lines after removal")
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		o := newTestOrder()
		if err := o.RemoveService("missing"); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
		if err := o.RemoveItem("missing"); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("frozen after budget generation", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusAguardandoAprovacao)

		if err := o.AddService(IncludedService{ID: "inc-1"}); !errors.Is(err, ErrOrderNotEditable) {
			t.Fatalf("expected ErrOrderNotEditable, got %v", err)
		}
		if err := o.AddItem(IncludedItem{ID: "inc-2"}); !errors.Is(err, ErrOrderNotEditable) {
			t.Fatalf("expected ErrOrderNotEditable, got %v", err)
		}
		if err := o.RemoveService("inc-1"); !errors.Is(err, ErrOrderNotEditable) {
			t.Fatalf("expected ErrOrderNotEditable, got %v", err)
		}
	})
}

func TestServiceOrder_GenerateBudget(t *testing.T) {
	t.Run("prices services and items", func(t *testing.T) {
		o := newTestOrder()
		_ = o.AddService(IncludedService{ID: "inc-1", Price: 150})
		_ = o.AddService(IncludedService{ID: "inc-2", Price: 80.5})
		_ = o.AddItem(IncludedItem{ID: "inc-3", Price: 35, Quantity: 2, Kind: ItemKindPeca})
		_ = o.AddItem(IncludedItem{ID: "inc-4", Price: 12.25, Quantity: 4, Kind: ItemKindInsumo})
		advance(t, o, OrderStatusEmDiagnostico)

		now := time.Now().UTC()
		if err := o.GenerateBudget(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != OrderStatusAguardandoAprovacao {
			t.Fatalf("expected aguardando_aprovacao, got %s", o.Status)
		}
		want := 150 + 80.5 + 35*2 + 12.25*4
		if o.Budget == nil || o.Budget.Total != want {
			t.Fatalf("expected total %v, got %+v", want, o.Budget)
		}
		if !o.Budget.GeneratedAt.Equal(now) {
			t.Fatalf("expected generated_at %v, got %v", now, o.Budget.GeneratedAt)
		}
	})

	t.Run("second generation is a conflict and keeps the first budget", func(t *testing.T) {
		o := newTestOrder()
		_ = o.AddService(IncludedService{ID: "inc-1", Price: 100})
		advance(t, o, OrderStatusAguardandoAprovacao)
		first := *o.Budget

		err := o.GenerateBudget(first.GeneratedAt.Add(time.Hour))
		if !errors.Is(err, ErrBudgetAlreadyGenerated) {
			t.Fatalf("expected ErrBudgetAlreadyGenerated, got %v", err)
		}
		if o.Budget.Total != first.Total || !o.Budget.GeneratedAt.Equal(first.GeneratedAt) {
			t.Fatalf("budget was rewritten: %+v", o.Budget)
		}
		if o.Status != OrderStatusAguardandoAprovacao {
			t.Fatalf("status changed on conflict: %s", o.Status)
		}
	})

	t.Run("requires diagnosis", func(t *testing.T) {
		o := newTestOrder()
		var tErr *TransitionError
		if err := o.GenerateBudget(time.Now()); !errors.As(err, &tErr) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
	})
}

func TestServiceOrder_BeginExecution(t *testing.T) {
	t.Run("requires a budget", func(t *testing.T) {
		o := newTestOrder()
		if err := o.BeginExecution(time.Now()); !errors.Is(err, ErrBudgetMissing) {
			t.Fatalf("expected ErrBudgetMissing, got %v", err)
		}
	})

	t.Run("stamps execution start once", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusEmExecucao)
		if o.History.ExecutionStartedAt == nil {
			t.Fatalf("expected execution_started_at stamp")
		}
		stamp := *o.History.ExecutionStartedAt

		// A second approval is already illegal at the transition level; the
		// stamp must survive regardless.
		if err := o.BeginExecution(stamp.Add(time.Hour)); err == nil {
			t.Fatalf("expected error on re-approval")
		}
		if !o.History.ExecutionStartedAt.Equal(stamp) {
			t.Fatalf("execution_started_at was rewritten")
		}
	})
}

func TestServiceOrder_DisapproveBudget(t *testing.T) {
	t.Run("cancels the order", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusAguardandoAprovacao)
		if err := o.DisapproveBudget(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != OrderStatusCancelada {
			t.Fatalf("expected cancelada, got %s", o.Status)
		}
	})

	t.Run("requires a budget", func(t *testing.T) {
		o := newTestOrder()
		if err := o.DisapproveBudget(); !errors.Is(err, ErrBudgetMissing) {
			t.Fatalf("expected ErrBudgetMissing, got %v", err)
		}
	})
}

func TestServiceOrder_DeliveryOrdering(t *testing.T) {
	t.Run("full path stamps every instant in order", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusEntregue)

		h := o.History
		if h.ExecutionStartedAt == nil || h.FinalizedAt == nil || h.DeliveredAt == nil {
			t.Fatalf("missing stamps: %+v", h)
		}
		if !h.CreatedAt.Before(*h.ExecutionStartedAt) ||
			!h.ExecutionStartedAt.Before(*h.FinalizedAt) ||
			!h.FinalizedAt.Before(*h.DeliveredAt) {
			t.Fatalf("stamps out of order: %+v", h)
		}
	})

	t.Run("deliver requires finalization", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusEmExecucao)
		if err := o.Deliver(time.Now()); err == nil {
			t.Fatalf("expected error delivering from em_execucao")
		}
	})

	t.Run("history refuses a rewrite even if the status machine is bypassed", func(t *testing.T) {
		now := time.Now().UTC()
		h := HistoryTimestamps{CreatedAt: now}
		if err := h.markDelivered(now); !errors.Is(err, ErrDeliverBeforeFinalize) {
			t.Fatalf("expected ErrDeliverBeforeFinalize, got %v", err)
		}
		if err := h.markFinalized(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := h.markFinalized(now.Add(time.Hour)); !errors.Is(err, ErrHistoryRewrite) {
			t.Fatalf("expected ErrHistoryRewrite, got %v", err)
		}
		if err := h.markDelivered(now.Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := h.markDelivered(now.Add(2 * time.Hour)); !errors.Is(err, ErrHistoryRewrite) {
			t.Fatalf("expected ErrHistoryRewrite, got %v", err)
		}
	})
}

func TestServiceOrder_Cancel(t *testing.T) {
	cancellable := []OrderStatus{OrderStatusRecebida, OrderStatusEmDiagnostico, OrderStatusAguardandoAprovacao, OrderStatusEmExecucao, OrderStatusFinalizada}
	for _, s := range cancellable {
		t.Run("from "+string(s), func(t *testing.T) {
			o := newTestOrder()
			advance(t, o, s)
			if err := o.Cancel(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.Status != OrderStatusCancelada {
				t.Fatalf("expected cancelada, got %s", o.Status)
			}
		})
	}

	t.Run("delivered orders cannot be cancelled", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusEntregue)
		if err := o.Cancel(); err == nil {
			t.Fatalf("expected error cancelling a delivered order")
		}
	})
}

func TestServiceOrder_SetStatus(t *testing.T) {
	t.Run("routes through the same guards as direct calls", func(t *testing.T) {
		o := newTestOrder()
		now := o.History.CreatedAt.Add(time.Hour)

		if err := o.SetStatus(OrderStatusEmDiagnostico, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := o.SetStatus(OrderStatusAguardandoAprovacao, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Budget == nil {
			t.Fatalf("expected budget generated via set status")
		}
		if err := o.SetStatus(OrderStatusEmExecucao, now.Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.History.ExecutionStartedAt == nil {
			t.Fatalf("expected execution stamp via set status")
		}
	})

	t.Run("skipping steps is rejected", func(t *testing.T) {
		o := newTestOrder()
		var tErr *TransitionError
		if err := o.SetStatus(OrderStatusEntregue, time.Now()); !errors.As(err, &tErr) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		o := newTestOrder()
		var tErr *TransitionError
		if err := o.SetStatus(OrderStatus("suspensa"), time.Now()); !errors.As(err, &tErr) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
	})

	t.Run("recebida is never a target", func(t *testing.T) {
		o := newTestOrder()
		advance(t, o, OrderStatusEmDiagnostico)
		if err := o.SetStatus(OrderStatusRecebida, time.Now()); err == nil {
			t.Fatalf("expected error moving back to recebida")
		}
	})
}
