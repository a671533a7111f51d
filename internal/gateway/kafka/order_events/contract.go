//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_test
package order_events

import "storefront/pkg/logger"

type Producer interface {
	Send(topic string, key string, payload []byte)
}

type gatewayLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
