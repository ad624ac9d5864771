package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_os/internal/domain/entities"
	mock_interfaces "mecanica_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func queueOrder(id string, status entities.OrderStatus, createdAt time.Time) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:      id,
		Code:    "OS-" + id,
		Status:  status,
		History: entities.HistoryTimestamps{CreatedAt: createdAt},
	}
}

func TestOrderQueryUseCase_ActiveQueue(t *testing.T) {
	t.Run("ranks by status urgency then age", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(repo)

		base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ServiceOrder{
			queueOrder("a", entities.OrderStatusRecebida, base),
			queueOrder("b", entities.OrderStatusEntregue, base),
			queueOrder("c", entities.OrderStatusAguardandoAprovacao, base.Add(time.Hour)),
			queueOrder("d", entities.OrderStatusEmExecucao, base.Add(2*time.Hour)),
			queueOrder("e", entities.OrderStatusCancelada, base),
			queueOrder("f", entities.OrderStatusEmExecucao, base.Add(time.Hour)),
			queueOrder("g", entities.OrderStatusFinalizada, base),
			queueOrder("h", entities.OrderStatusEmDiagnostico, base),
		}, nil)

		queue, err := uc.ActiveQueue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"f", "d", "c", "h", "a"}
		if len(queue) != len(want) {
			t.Fatalf("expected %d orders, got %d", len(want), len(queue))
		}
		for i, id := range want {
			if queue[i].ID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, queue[i].ID)
			}
		}
	})

	t.Run("empty set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		queue, err := uc.ActiveQueue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue) != 0 {
			t.Fatalf("expected empty queue, got %d", len(queue))
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ActiveQueue(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func deliveredOrder(id string, createdAt time.Time, execHours, finishHours, deliverHours float64) entities.ServiceOrder {
	exec := createdAt.Add(time.Duration(execHours * float64(time.Hour)))
	fin := createdAt.Add(time.Duration(finishHours * float64(time.Hour)))
	del := createdAt.Add(time.Duration(deliverHours * float64(time.Hour)))
	return entities.ServiceOrder{
		ID:     id,
		Status: entities.OrderStatusEntregue,
		History: entities.HistoryTimestamps{
			CreatedAt:          createdAt,
			ExecutionStartedAt: &exec,
			FinalizedAt:        &fin,
			DeliveredAt:        &del,
		},
	}
}

func TestOrderQueryUseCase_TimeMetrics(t *testing.T) {
	t.Run("window bounds", func(t *testing.T) {
		uc := NewOrderQueryUseCase(nil)
		for _, days := range []int{0, -3, 366} {
			if _, err := uc.TimeMetrics(context.Background(), days); !errors.Is(err, ErrInvalidMetricsWindow) {
				t.Fatalf("days=%d: expected ErrInvalidMetricsWindow, got %v", days, err)
			}
		}
	})

	t.Run("no delivered orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(repo)

		repo.EXPECT().ListDeliveredSince(gomock.Any(), gomock.Any()).Return(nil, nil)

		if _, err := uc.TimeMetrics(context.Background(), 30); !errors.Is(err, ErrNoDeliveredOrders) {
			t.Fatalf("expected ErrNoDeliveredOrders, got %v", err)
		}
	})

	t.Run("averages rounded to two decimals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(repo)

		base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().ListDeliveredSince(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, since time.Time) ([]entities.ServiceOrder, error) {
				if time.Since(since) < 6*24*time.Hour || time.Since(since) > 8*24*time.Hour {
					t.Fatalf("unexpected window start: %v", since)
				}
				return []entities.ServiceOrder{
					// creation→delivery 48h, execution→finish 10h
					deliveredOrder("a", base, 20, 30, 48),
					// creation→delivery 25h, execution→finish 3.5h
					deliveredOrder("b", base, 5, 8.5, 25),
				}, nil
			},
		)

		report, err := uc.TimeMetrics(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.WindowDays != 7 || report.DeliveredOrders != 2 {
			t.Fatalf("unexpected report shape: %+v", report)
		}
		if report.AvgCreationToDeliveryHours != 36.5 {
			t.Fatalf("expected delivery average 36.5, got %v", report.AvgCreationToDeliveryHours)
		}
		if report.AvgExecutionToFinishedHours != 6.75 {
			t.Fatalf("expected execution average 6.75, got %v", report.AvgExecutionToFinishedHours)
		}
	})

	t.Run("fractional average rounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(repo)

		base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().ListDeliveredSince(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{
			deliveredOrder("a", base, 1, 2, 10),
			deliveredOrder("b", base, 1, 2, 10),
			deliveredOrder("c", base, 1, 2, 11),
		}, nil)

		report, err := uc.TimeMetrics(context.Background(), 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (10+10+11)/3 = 10.333... → 10.33
		if report.AvgCreationToDeliveryHours != 10.33 {
			t.Fatalf("expected 10.33, got %v", report.AvgCreationToDeliveryHours)
		}
	})
}
