package order_stats

import (
	"context"
	"time"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

// OrderStats периодически снимает распределение заказов по статусам
// и выставляет гейджи Prometheus. Статусы без заказов обнуляются, иначе
// гейдж залипает на последнем ненулевом значении.
type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	statuses := []entities.OrderStatusType{
		entities.OrderPending,
		entities.OrderProcessing,
		entities.OrderShipped,
		entities.OrderDelivered,
		entities.OrderCancelled,
	}

	var total int64
	for _, status := range statuses {
		count := counts[status]
		total += count
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	o.log.With(
		logger.NewField("total", total),
	).Info("order stats")

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
