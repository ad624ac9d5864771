package request

import "strings"

// Saga webhook actions. These are the completion callbacks of the external
// stock-reservation saga; signatures are validated by the API gateway before
// the request reaches this service.
const (
	SagaActionApprove    = "approve"
	SagaActionDisapprove = "disapprove"
	SagaActionSetStatus  = "set_status"
)

type SagaWebhookRequest struct {
	OrderID       string `json:"order_id" binding:"required"`
	Action        string `json:"action" binding:"required"`
	TargetStatus  string `json:"target_status,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func (r SagaWebhookRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r SagaWebhookRequest) ResolveCorrelationID() string {
	return strings.TrimSpace(r.CorrelationID)
}

func (r SagaWebhookRequest) ResolveAction() string {
	return strings.ToLower(strings.TrimSpace(r.Action))
}
