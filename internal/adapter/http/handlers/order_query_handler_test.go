package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_os/internal/adapter/http/handlers/mocks"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderQueryHandler_ActiveQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns ranked orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/queue", h.ActiveQueue)

		now := time.Now().UTC()
		uc.EXPECT().ActiveQueue(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: "order-1", Code: "OS-AAAA1111", Status: entities.OrderStatusEmExecucao, History: entities.HistoryTimestamps{CreatedAt: now}},
			{ID: "order-2", Code: "OS-BBBB2222", Status: entities.OrderStatusRecebida, History: entities.HistoryTimestamps{CreatedAt: now}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/queue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("body unmarshal: %v", err)
		}
		if len(body) != 2 || body[0]["id"] != "order-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty queue is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/queue", h.ActiveQueue)

		uc.EXPECT().ActiveQueue(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/queue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("expected [], got %s", body)
		}
	})
}

func TestOrderQueryHandler_TimeMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/metrics", h.TimeMetrics)

		uc.EXPECT().TimeMetrics(gomock.Any(), 30).Return(usecase.TimeMetricsReport{
			WindowDays:                  30,
			DeliveredOrders:             4,
			AvgCreationToDeliveryHours:  52.25,
			AvgExecutionToFinishedHours: 9.5,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.TimeMetricsReport
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("body unmarshal: %v", err)
		}
		if body.DeliveredOrders != 4 || body.AvgCreationToDeliveryHours != 52.25 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("explicit window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/metrics", h.TimeMetrics)

		uc.EXPECT().TimeMetrics(gomock.Any(), 7).Return(usecase.TimeMetricsReport{WindowDays: 7, DeliveredOrders: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/metrics?days=7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-numeric days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/metrics", h.TimeMetrics)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/metrics?days=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out-of-range window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/metrics", h.TimeMetrics)

		uc.EXPECT().TimeMetrics(gomock.Any(), 999).Return(usecase.TimeMetricsReport{}, usecase.ErrInvalidMetricsWindow)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/metrics?days=999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no delivered orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/metrics", h.TimeMetrics)

		uc.EXPECT().TimeMetrics(gomock.Any(), 30).Return(usecase.TimeMetricsReport{}, usecase.ErrNoDeliveredOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != pkg.CodeDomainRuleBroken {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})
}
