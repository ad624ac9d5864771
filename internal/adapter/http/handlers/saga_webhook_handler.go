package handlers

import (
	"log"
	"net/http"
	"strings"

	request "mecanica_os/internal/adapter/http/dto/request"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg/correlation"

	"github.com/gin-gonic/gin"
)

// SagaWebhookHandler receives the external saga's completion callbacks over
// HTTP. Signature validation happens at the gateway; here the request acts as
// the system actor.
//
// The response is a uniform 202 regardless of internal outcome so the
// webhook channel leaks nothing about order existence or state; failures are
// only logged. The saga reconciles through its own retries.
type SagaWebhookHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewSagaWebhookHandler(uc usecase.IServiceOrderUseCase) *SagaWebhookHandler {
	return &SagaWebhookHandler{usecase: uc}
}

func (h *SagaWebhookHandler) HandleSagaCallback(c *gin.Context) {
	accepted := gin.H{"status": "accepted"}

	var payload request.SagaWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][saga] invalid payload (masked): %v", err)
		c.JSON(http.StatusAccepted, accepted)
		return
	}

	// Same inbound precedence as the Kafka consumer: transport header first,
	// then the payload's own correlation field. The saga may call back
	// without custom headers.
	ctx := c.Request.Context()
	token := strings.TrimSpace(c.GetHeader(correlation.Header))
	if token == "" {
		token = payload.ResolveCorrelationID()
	}
	if token != "" {
		ctx = correlation.With(ctx, token)
	}

	system := entities.SystemActor()
	orderID := payload.ResolveOrderID()

	var err error
	switch payload.ResolveAction() {
	case request.SagaActionApprove:
		_, err = h.usecase.ApproveBudget(ctx, system, orderID)
	case request.SagaActionDisapprove:
		_, err = h.usecase.DisapproveBudget(ctx, system, orderID)
	case request.SagaActionSetStatus:
		_, err = h.usecase.SetStatus(ctx, system, orderID, entities.OrderStatus(payload.TargetStatus))
	default:
		log.Printf("[webhook][saga] unknown action (masked) action=%q order_id=%s", payload.Action, orderID)
	}
	if err != nil {
		log.Printf("[webhook][saga] callback failed (masked) order_id=%s err=%v", orderID, err)
	}

	c.JSON(http.StatusAccepted, accepted)
}
