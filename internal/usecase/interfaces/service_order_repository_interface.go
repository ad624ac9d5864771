package interfaces

import (
	"context"
	"time"

	"mecanica_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Conventions follow the rest of the mecânica services: a zero-value
// aggregate (empty ID) means "not found", errors are reserved for transport
// or marshalling failures.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	// Save persists the mutated aggregate. Writes are last-writer-wins; the
	// source system carries no optimistic-concurrency token. A row missing at
	// write time yields a zero aggregate, same as GetByID.
	Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
	ListDeliveredSince(ctx context.Context, since time.Time) ([]entities.ServiceOrder, error)
}
