package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_notifications_total",
		Help: "Total number of order status change notifications processed",
	},
	[]string{"status"},
)
