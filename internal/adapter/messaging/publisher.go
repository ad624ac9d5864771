package messaging

import (
	"context"
	"encoding/json"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/infrastructure/messaging"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/correlation"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaOrderPublisher publishes lifecycle events and compensation signals to
// the order-events topic. Every message carries the correlation token: always
// in the transport header, and in the envelope's native field whenever the
// token is identifier-shaped.
type KafkaOrderPublisher struct {
	producer messaging.Producer
	logger   *zap.Logger
}

var (
	_ interfaces.IOrderEventPublisher = (*KafkaOrderPublisher)(nil)
	_ interfaces.ICompensationSignals = (*KafkaOrderPublisher)(nil)
)

func NewKafkaOrderPublisher(producer messaging.Producer, logger *zap.Logger) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{producer: producer, logger: logger}
}

func (p *KafkaOrderPublisher) OrderCreated(ctx context.Context, o entities.ServiceOrder) error {
	return p.publish(ctx, EventOrderCreated, o.ID, OrderCreatedPayload{
		OrderID:   o.ID,
		Code:      o.Code,
		VehicleID: o.VehicleID,
	})
}

func (p *KafkaOrderPublisher) BudgetGenerated(ctx context.Context, o entities.ServiceOrder) error {
	payload := BudgetGeneratedPayload{OrderID: o.ID, Code: o.Code}
	if o.Budget != nil {
		payload.Total = o.Budget.Total
		payload.GeneratedAt = o.Budget.GeneratedAt
	}
	return p.publish(ctx, EventBudgetGenerated, o.ID, payload)
}

func (p *KafkaOrderPublisher) StatusChanged(ctx context.Context, o entities.ServiceOrder, from entities.OrderStatus) error {
	return p.publish(ctx, EventStatusChanged, o.ID, StatusChangedPayload{
		OrderID: o.ID,
		From:    string(from),
		To:      string(o.Status),
	})
}

func (p *KafkaOrderPublisher) StockShortfall(ctx context.Context, orderID, stockItemID string, quantity int) error {
	return p.publish(ctx, EventStockShortfall, orderID, StockShortfallPayload{
		OrderID:     orderID,
		StockItemID: stockItemID,
		Quantity:    quantity,
	})
}

func (p *KafkaOrderPublisher) SagaTimeout(ctx context.Context, orderID string) error {
	return p.publish(ctx, EventSagaTimeout, orderID, SagaTimeoutPayload{OrderID: orderID})
}

func (p *KafkaOrderPublisher) CriticalFailure(ctx context.Context, orderID, reason string) error {
	return p.publish(ctx, EventCriticalFailure, orderID, CriticalFailurePayload{OrderID: orderID, Reason: reason})
}

func (p *KafkaOrderPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	token, correlationID, isUUID := correlation.Outbound(ctx)
	env := Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}
	if isUUID {
		env.CorrelationID = correlationID
	}

	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: correlation.Header, Value: []byte(token)},
			{Key: "event-type", Value: []byte(eventType)},
		},
	}
	if err := p.producer.WriteMessage(ctx, msg); err != nil {
		p.logger.Error("failed to publish order event",
			zap.String("event_type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info("order event published",
		zap.String("event_type", eventType),
		zap.String("key", key),
		zap.String("correlation_id", token),
	)
	return nil
}
