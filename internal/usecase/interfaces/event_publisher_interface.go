package interfaces

import (
	"context"

	"mecanica_os/internal/domain/entities"
)

// IOrderEventPublisher publishes order lifecycle events to the asynchronous
// boundary. Implementations stamp correlation tokens on every message.
type IOrderEventPublisher interface {
	OrderCreated(ctx context.Context, o entities.ServiceOrder) error
	BudgetGenerated(ctx context.Context, o entities.ServiceOrder) error
	StatusChanged(ctx context.Context, o entities.ServiceOrder, from entities.OrderStatus) error
}

// ICompensationSignals is the hook surface for the external reconciliation
// saga. The OS service only emits these signals; the compensation logic that
// consumes them lives outside this process.
type ICompensationSignals interface {
	StockShortfall(ctx context.Context, orderID, stockItemID string, quantity int) error
	SagaTimeout(ctx context.Context, orderID string) error
	CriticalFailure(ctx context.Context, orderID string, reason string) error
}
