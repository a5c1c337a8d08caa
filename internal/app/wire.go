//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	routingGateway "dispatch/internal/gateway/routing"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_online_put"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/dispatch_assign_post"
	"dispatch/internal/handlers/rest/dispatch_force_post"
	"dispatch/internal/handlers/rest/location_post"
	"dispatch/internal/handlers/rest/order_cancel_post"
	"dispatch/internal/handlers/rest/order_delivered_post"
	"dispatch/internal/handlers/rest/order_feedback_post"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/route_get"
	"dispatch/internal/handlers/tasks/dispatch_pending"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/watch"

	courierRepo "dispatch/internal/repository/courier"
	orderRepo "dispatch/internal/repository/order"
	courierService "dispatch/internal/service/courier"
	dispatchService "dispatch/internal/service/dispatch"
	orderService "dispatch/internal/service/order"
	routeService "dispatch/internal/service/route"
	trackingService "dispatch/internal/service/tracking"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
)

type (
	DispatchInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceDispatch   ServiceDispatch
	ServiceTracking   ServiceTracking
	ServiceRoute      ServiceRoute
	WatchHub          *watch.Hub
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_online_put.Service
	couriers_get.Service
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_cancel_post.Service
	order_delivered_post.Service
	order_feedback_post.Service
}

type ServiceDispatch interface {
	dispatch_assign_post.Service
	dispatch_force_post.Service
}

type ServiceTracking interface {
	location_post.Service
	courier_online_put.Sessions
}

type ServiceRoute interface {
	route_get.Service
	order_get.EstimateProvider
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideWatchHub,
		provideDispatchInterval,

		provideCourierRepository,
		provideOrderRepository,

		provideHTTPClient,
		provideRoutingGateway,

		provideServiceCourier,
		provideServiceDispatch,
		provideServiceRoute,
		provideServiceTracking,
		provideStatusHandlerFactory,
		provideServiceOrder,

		provideDispatchPendingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Registry)),
		wire.Bind(new(ServiceOrder), new(*orderService.Lifecycle)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracker)),
		wire.Bind(new(ServiceRoute), new(*routeService.Estimator)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
		wire.Bind(new(dispatchService.Orders), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.Couriers), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(trackingService.CourierStore), new(*courierRepo.Repository)),
		wire.Bind(new(trackingService.OrderStore), new(*orderRepo.Repository)),
		wire.Bind(new(trackingService.RouteRefresher), new(*routeService.Estimator)),
		wire.Bind(new(routeService.Gateway), new(*routingGateway.Gateway)),
		wire.Bind(new(routeService.OrderStore), new(*orderRepo.Repository)),
		wire.Bind(new(order_handle.Dispatcher), new(*dispatchService.Dispatch)),
		wire.Bind(new(order_handle.EstimateCache), new(*routeService.Estimator)),
		wire.Bind(new(orderService.EstimateCache), new(*routeService.Estimator)),

		wire.Bind(new(dispatchService.Events), new(*watch.Hub)),
		wire.Bind(new(orderService.Events), new(*watch.Hub)),
		wire.Bind(new(trackingService.Events), new(*watch.Hub)),
		wire.Bind(new(routeService.Events), new(*watch.Hub)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatch_pending.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Lifecycle
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideWatchHub,

		provideCourierRepository,
		provideOrderRepository,

		provideHTTPClient,
		provideRoutingGateway,

		provideServiceCourier,
		provideServiceDispatch,
		provideServiceRoute,
		provideStatusHandlerFactory,
		provideServiceOrder,

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
		wire.Bind(new(dispatchService.Orders), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.Couriers), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.CourierRegistry), new(*courierService.Registry)),
		wire.Bind(new(routeService.Gateway), new(*routingGateway.Gateway)),
		wire.Bind(new(routeService.OrderStore), new(*orderRepo.Repository)),
		wire.Bind(new(order_handle.Dispatcher), new(*dispatchService.Dispatch)),
		wire.Bind(new(order_handle.EstimateCache), new(*routeService.Estimator)),
		wire.Bind(new(orderService.EstimateCache), new(*routeService.Estimator)),

		wire.Bind(new(dispatchService.Events), new(*watch.Hub)),
		wire.Bind(new(orderService.Events), new(*watch.Hub)),
		wire.Bind(new(routeService.Events), new(*watch.Hub)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

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

func provideWatchHub() *watch.Hub {
	return watch.NewHub()
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{}
}

func provideRoutingGateway(client *http.Client, cfg *config.Config) *routingGateway.Gateway {
	return routingGateway.New(client, cfg.Routing.EstimateURL, cfg.Routing.RequestTimeout)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Registry {
	return courierService.New(repository, txManager)
}

func provideServiceDispatch(
	orders dispatchService.Orders,
	couriers dispatchService.Couriers,
	registry dispatchService.CourierRegistry,
	events dispatchService.Events,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(orders, couriers, registry, events, txManager)
}

func provideServiceRoute(
	gateway routeService.Gateway,
	orders routeService.OrderStore,
	events routeService.Events,
) *routeService.Estimator {
	return routeService.New(gateway, orders, events)
}

func provideServiceTracking(
	couriers trackingService.CourierStore,
	orders trackingService.OrderStore,
	refresher trackingService.RouteRefresher,
	events trackingService.Events,
	cfg *config.Config,
) *trackingService.Tracker {
	return trackingService.New(couriers, orders, refresher, events, cfg.Tracking.MovementThresholdKm)
}

func provideStatusHandlerFactory(
	dispatcher order_handle.Dispatcher,
	estimates order_handle.EstimateCache,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(dispatcher, estimates)
}

func provideServiceOrder(
	repository orderService.Repository,
	registry orderService.CourierRegistry,
	events orderService.Events,
	statusFactory orderService.HandlerFactory,
	estimates orderService.EstimateCache,
	txManager orderService.TxManager,
) *orderService.Lifecycle {
	return orderService.New(repository, registry, events, statusFactory, estimates, txManager)
}

func provideDispatchInterval(cfg *config.Config) DispatchInterval {
	return DispatchInterval(cfg.Tasks.DispatchPendingInterval)
}

func provideDispatchPendingTask(
	log logger.Logger,
	dispatchSvc dispatch_pending.Service,
	interval DispatchInterval,
) *dispatch_pending.DispatchPending {
	return dispatch_pending.New(log, dispatchSvc, time.Duration(interval))
}

func provideTaskList(
	dispatchPendingTask *dispatch_pending.DispatchPending,
) []background.Task {
	return []background.Task{
		dispatchPendingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
