package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topics shared with the saga coordinator.
const (
	TopicOrderEvents = "os.order-events"
	TopicSagaEvents  = "os.saga-events"
)

// Outbound event types.
const (
	EventOrderCreated    = "order.created"
	EventBudgetGenerated = "budget.generated"
	EventStatusChanged   = "order.status_changed"

	EventStockShortfall  = "compensation.stock_shortfall"
	EventSagaTimeout     = "compensation.saga_timeout"
	EventCriticalFailure = "compensation.critical_failure"
)

// Inbound event types (saga completion callbacks).
const (
	EventBudgetApproved    = "budget.approved"
	EventBudgetDisapproved = "budget.disapproved"
	EventSetStatus         = "order.set_status"
	EventSagaTimedOut      = "saga.timeout"
)

// Envelope is the wire shape of every message on the order/saga topics.
// CorrelationID is the envelope's native correlation field; the same token
// also travels in the X-Correlation-Id transport header, which wins on read.
type Envelope struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CorrelationID uuid.UUID       `json:"correlation_id"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID   string `json:"order_id"`
	Code      string `json:"code"`
	VehicleID string `json:"vehicle_id"`
}

type BudgetGeneratedPayload struct {
	OrderID     string    `json:"order_id"`
	Code        string    `json:"code"`
	Total       float64   `json:"total"`
	GeneratedAt time.Time `json:"generated_at"`
}

type StatusChangedPayload struct {
	OrderID string `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type StockShortfallPayload struct {
	OrderID     string `json:"order_id"`
	StockItemID string `json:"stock_item_id"`
	Quantity    int    `json:"quantity"`
}

type SagaTimeoutPayload struct {
	OrderID string `json:"order_id"`
}

type CriticalFailurePayload struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// SagaCallbackPayload is the inbound shape for saga completion events. The
// CorrelationId field participates in inbound token resolution when neither
// the transport header nor the envelope carries one.
type SagaCallbackPayload struct {
	OrderID       string `json:"order_id"`
	TargetStatus  string `json:"target_status,omitempty"`
	CorrelationId string `json:"correlation_id,omitempty"`
}
