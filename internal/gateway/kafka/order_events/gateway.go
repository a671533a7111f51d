package order_events

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/entities"
	"storefront/internal/events"
	"storefront/pkg/logger"
)

// Gateway публикует события жизненного цикла заказа в Kafka.
// Публикация асинхронная: неудача доставки логируется продюсером и не
// откатывает уже совершенную операцию над заказом.
type Gateway struct {
	log                     gatewayLogger
	producer                Producer
	orderCreatedTopic       string
	orderStatusChangedTopic string
}

func New(log gatewayLogger, producer Producer, orderCreatedTopic, orderStatusChangedTopic string) *Gateway {
	return &Gateway{
		log:                     log,
		producer:                producer,
		orderCreatedTopic:       orderCreatedTopic,
		orderStatusChangedTopic: orderStatusChangedTopic,
	}
}

func (g *Gateway) PublishOrderCreated(_ context.Context, order entities.Order) {
	event := events.OrderCreated{
		OrderID:   order.ID,
		UserID:    order.UserID,
		UserEmail: order.UserEmail,
		Total:     order.Total,
		ItemCount: len(order.Items),
		CreatedAt: order.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		g.log.With(
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		).Error("failed to marshal order created event")
		return
	}

	g.producer.Send(g.orderCreatedTopic, order.ID, payload)
}

func (g *Gateway) PublishOrderStatusChanged(_ context.Context, order entities.Order, oldStatus entities.OrderStatusType) {
	event := events.OrderStatusChanged{
		OrderID:   order.ID,
		UserID:    order.UserID,
		UserEmail: order.UserEmail,
		OldStatus: oldStatus.String(),
		NewStatus: order.Status.String(),
		ChangedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		g.log.With(
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		).Error("failed to marshal order status changed event")
		return
	}

	g.producer.Send(g.orderStatusChangedTopic, order.ID, payload)
}
