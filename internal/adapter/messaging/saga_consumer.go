package messaging

import (
	"context"
	"encoding/json"
	"errors"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/infrastructure/messaging"
	"mecanica_os/internal/usecase"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/correlation"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SagaConsumer consumes the external saga's completion callbacks and drives
// the order lifecycle as the system actor. The inbound correlation token is
// resolved per the propagation precedence and scoped to each message's
// handling context, so concurrent handlers never see each other's token.
type SagaConsumer struct {
	consumer messaging.Consumer
	orders   usecase.IServiceOrderUseCase
	signals  interfaces.ICompensationSignals
	logger   *zap.Logger
}

func NewSagaConsumer(
	consumer messaging.Consumer,
	orders usecase.IServiceOrderUseCase,
	signals interfaces.ICompensationSignals,
	logger *zap.Logger,
) *SagaConsumer {
	return &SagaConsumer{consumer: consumer, orders: orders, signals: signals, logger: logger}
}

// Start blocks reading saga events until ctx is done. Handler failures are
// logged and the loop moves on; the saga re-delivers what matters.
func (c *SagaConsumer) Start(ctx context.Context) error {
	c.logger.Info("saga consumer started, waiting for messages")

	for {
		msg, err := c.consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Info("context done, exiting saga read loop")
				return nil
			}
			c.logger.Error("error reading from saga topic", zap.Error(err))
			continue
		}

		if err := c.Handle(ctx, *msg); err != nil {
			c.logger.Error("saga event handling failed",
				zap.ByteString("key", msg.Key),
				zap.Error(err),
			)
		}
	}
}

// Handle processes one saga callback message.
func (c *SagaConsumer) Handle(ctx context.Context, msg kafkago.Message) error {
	var env Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		c.logger.Error("invalid saga event envelope", zap.Error(err), zap.ByteString("raw_value", msg.Value))
		return err
	}

	var payload SagaCallbackPayload
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			c.logger.Error("invalid saga event payload", zap.Error(err), zap.String("event_type", env.Type))
			return err
		}
	}

	token := correlation.Resolve(headerValue(msg.Headers, correlation.Header), env.CorrelationID, payload)
	msgCtx := correlation.With(ctx, token)

	c.logger.Info("saga event received",
		zap.String("event_type", env.Type),
		zap.String("order_id", payload.OrderID),
		zap.String("correlation_id", token),
	)

	system := entities.SystemActor()
	var err error
	switch env.Type {
	case EventBudgetApproved:
		_, err = c.orders.ApproveBudget(msgCtx, system, payload.OrderID)
	case EventBudgetDisapproved:
		_, err = c.orders.DisapproveBudget(msgCtx, system, payload.OrderID)
	case EventSetStatus:
		_, err = c.orders.SetStatus(msgCtx, system, payload.OrderID, entities.OrderStatus(payload.TargetStatus))
	case EventSagaTimedOut:
		err = c.signals.SagaTimeout(msgCtx, payload.OrderID)
	default:
		c.logger.Warn("unknown saga event type, skipping", zap.String("event_type", env.Type))
	}
	return err
}

func headerValue(headers []kafkago.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
