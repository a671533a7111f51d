package notifier

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/events"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

var ErrStaleEvent = errors.New("order status diverged from event")

// Notifier доставляет покупателю уведомление о смене статуса заказа.
// Реальной отправки почты пока нет: уведомление фиксируется в логе и
// метрике, канал доставки подключается отдельно.
type Notifier struct {
	log        logger.Logger
	repository Repository
}

func New(log logger.Logger, repository Repository) *Notifier {
	return &Notifier{
		log:        log,
		repository: repository,
	}
}

// ProcessStatusChange сверяет событие с текущим состоянием заказа и шлет
// уведомление. Событие о несуществующем заказе не ошибка: заказ могли
// удалить раньше, чем доехало сообщение.
func (n *Notifier) ProcessStatusChange(ctx context.Context, event events.OrderStatusChanged) error {
	current, err := n.repository.GetByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			n.log.With(
				logger.NewField("order", event.OrderID),
			).Warn("notification skipped, order no longer exists")
			return nil
		}
		return fmt.Errorf("verify order: %w", err)
	}

	if current.Status.String() != event.NewStatus {
		return fmt.Errorf("%w: event %q, current %q", ErrStaleEvent, event.NewStatus, current.Status)
	}

	n.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("email", current.UserEmail),
		logger.NewField("old_status", event.OldStatus),
		logger.NewField("new_status", event.NewStatus),
	).Info("order status notification sent")

	NotificationsTotal.WithLabelValues(event.NewStatus).Inc()

	return nil
}
