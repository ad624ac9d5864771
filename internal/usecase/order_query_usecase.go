package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"
)

var (
	ErrInvalidMetricsWindow = errors.New("metrics window must be between 1 and 365 days")
	ErrNoDeliveredOrders    = errors.New("no delivered orders in the requested window")
)

const (
	minMetricsWindowDays = 1
	maxMetricsWindowDays = 365
)

// TimeMetricsReport holds historical duration averages over delivered
// orders, in hours rounded to two decimal places.
type TimeMetricsReport struct {
	WindowDays                  int     `json:"window_days"`
	DeliveredOrders             int     `json:"delivered_orders"`
	AvgCreationToDeliveryHours  float64 `json:"avg_creation_to_delivery_hours"`
	AvgExecutionToFinishedHours float64 `json:"avg_execution_to_finished_hours"`
}

// IOrderQueryUseCase exposes the read-side views of the order set: the staff
// work queue and the duration metrics dashboard.
type IOrderQueryUseCase interface {
	ActiveQueue(ctx context.Context) ([]entities.ServiceOrder, error)
	TimeMetrics(ctx context.Context, windowDays int) (TimeMetricsReport, error)
}

type OrderQueryUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IOrderQueryUseCase = (*OrderQueryUseCase)(nil)

func NewOrderQueryUseCase(repo interfaces.IServiceOrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{repo: repo}
}

// ActiveQueue returns in-flight orders ranked for the operational dashboard:
// em_execucao first, then aguardando_aprovacao, em_diagnostico and recebida,
// ties broken by creation time (oldest first). Finalized, delivered and
// cancelled orders never appear.
func (u *OrderQueryUseCase) ActiveQueue(ctx context.Context) ([]entities.ServiceOrder, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	queue := make([]entities.ServiceOrder, 0, len(all))
	for _, o := range all {
		if o.Status.IsActive() {
			queue = append(queue, o)
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		pi, pj := queue[i].Status.QueuePriority(), queue[j].Status.QueuePriority()
		if pi != pj {
			return pi < pj
		}
		return queue[i].History.CreatedAt.Before(queue[j].History.CreatedAt)
	})
	return queue, nil
}

// TimeMetrics averages, over orders delivered within the last windowDays,
// the creation-to-delivery and execution-start-to-finalization durations.
func (u *OrderQueryUseCase) TimeMetrics(ctx context.Context, windowDays int) (TimeMetricsReport, error) {
	if windowDays < minMetricsWindowDays || windowDays > maxMetricsWindowDays {
		return TimeMetricsReport{}, ErrInvalidMetricsWindow
	}

	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	delivered, err := u.repo.ListDeliveredSince(ctx, since)
	if err != nil {
		return TimeMetricsReport{}, err
	}
	if len(delivered) == 0 {
		return TimeMetricsReport{}, ErrNoDeliveredOrders
	}

	var totalDelivery, totalExecution time.Duration
	for _, o := range delivered {
		// Delivered orders always carry these stamps; the history value
		// enforces the ordering at transition time.
		if o.History.DeliveredAt != nil {
			totalDelivery += o.History.DeliveredAt.Sub(o.History.CreatedAt)
		}
		if o.History.ExecutionStartedAt != nil && o.History.FinalizedAt != nil {
			totalExecution += o.History.FinalizedAt.Sub(*o.History.ExecutionStartedAt)
		}
	}

	n := len(delivered)
	return TimeMetricsReport{
		WindowDays:                  windowDays,
		DeliveredOrders:             n,
		AvgCreationToDeliveryHours:  roundHours(totalDelivery, n),
		AvgExecutionToFinishedHours: roundHours(totalExecution, n),
	}, nil
}

func roundHours(total time.Duration, n int) float64 {
	mean := total.Hours() / float64(n)
	return math.Round(mean*100) / 100
}
