//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"storefront/internal/gateway/kafka/order_events"
	"storefront/internal/handlers/rest/order_delete"
	"storefront/internal/handlers/rest/order_get"
	"storefront/internal/handlers/rest/order_post"
	"storefront/internal/handlers/rest/order_status_put"
	"storefront/internal/handlers/rest/orders_get"
	"storefront/internal/handlers/rest/product_delete"
	"storefront/internal/handlers/rest/product_get"
	"storefront/internal/handlers/rest/product_post"
	"storefront/internal/handlers/rest/product_put"
	"storefront/internal/handlers/rest/products_get"
	"storefront/internal/handlers/rest/user_delete"
	"storefront/internal/handlers/rest/user_post"
	"storefront/internal/handlers/rest/user_put"
	"storefront/internal/handlers/rest/users_get"
	"storefront/internal/handlers/tasks/order_stats"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/kafka"

	orderRepo "storefront/internal/repository/order"
	productRepo "storefront/internal/repository/product"
	userRepo "storefront/internal/repository/user"
	"storefront/internal/service/notifier"
	orderService "storefront/internal/service/order"
	productService "storefront/internal/service/product"
	userService "storefront/internal/service/user"

	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceProduct    ServiceProduct
	ServiceUser       ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_status_put.Service
	order_delete.Service
}

type ServiceProduct interface {
	products_get.Service
	product_get.Service
	product_post.Service
	product_put.Service
	product_delete.Service
}

type ServiceUser interface {
	user_post.Service
	users_get.Service
	user_put.Service
	user_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsInterval,

		provideOrderRepository,
		provideProductRepository,
		provideUserRepository,

		provideOrderEventsGateway,

		provideServiceOrder,
		provideServiceProduct,
		provideServiceUser,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceProduct), new(*productService.Product)),
		wire.Bind(new(ServiceUser), new(*userService.User)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(productService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(orderService.EventPublisher), new(*order_events.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_stats.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	Notifier *notifier.Notifier
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-notifier)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideNotifier,

		wire.Bind(new(notifier.Repository), new(*orderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderEventsGateway(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *order_events.Gateway {
	return order_events.New(log, producer, cfg.Kafka.OrderCreatedTopic, cfg.Kafka.OrderStatusChangedTopic)
}

func provideServiceOrder(
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, publisher, txManager)
}

func provideServiceProduct(repository productService.Repository) *productService.Product {
	return productService.New(repository)
}

func provideServiceUser(
	repository userService.Repository,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, txManager)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	orderStatsService order_stats.Service,
	interval StatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, orderStatsService, time.Duration(interval))
}

func provideNotifier(log logger.Logger, repository notifier.Repository) *notifier.Notifier {
	return notifier.New(log, repository)
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
