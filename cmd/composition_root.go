package cmd

import (
	"context"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/in/http/auth"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/notifier"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	counter    ports.UnreadCounter
	notifier   *notifier.Emitter
	logger     *zap.Logger
}

// NewCompositionRoot wires the application. A nil publisher or counter
// disables event publishing or unread-count caching.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) *CompositionRoot {
	if publisher == nil {
		publisher = disabledPublisher{}
	}
	if counter == nil {
		counter = disabledCounter{}
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		counter:    counter,
		logger:     logger,
	}
	c.notifier = notifier.NewEmitter(c.notificationUoWFactory(), publisher, counter, logger)
	return c
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.cfg.Cart.SaveAttempts)
}

func (c *CompositionRoot) CreateEditCartItemCommandHandler() commands.EditCartItemCommandHandler {
	return commands.NewEditCartItemCommandHandler(c.cartUoWFactory(), c.cfg.Cart.SaveAttempts)
}

func (c *CompositionRoot) CreateUpdateCartQuantityCommandHandler() commands.UpdateCartQuantityCommandHandler {
	return commands.NewUpdateCartQuantityCommandHandler(c.cartUoWFactory(), c.cfg.Cart.SaveAttempts)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory(), c.cfg.Cart.SaveAttempts)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory(), c.cfg.Cart.SaveAttempts)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.cartUoWFactory(),
		order.NewNumberGenerator(),
		c.notifier,
		c.logger,
		commands.CreateOrderSettings{
			NumberAttempts:   c.cfg.Orders.NumberAttempts,
			CartSaveAttempts: c.cfg.Cart.SaveAttempts,
			Turnaround:       c.cfg.Orders.Turnaround(),
		},
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory(), c.counter, c.logger)
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory(), c.counter, c.logger)
}

func (c *CompositionRoot) CreateDeleteAllNotificationsCommandHandler() commands.DeleteAllNotificationsCommandHandler {
	return commands.NewDeleteAllNotificationsCommandHandler(c.notificationUoWFactory(), c.counter, c.logger)
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory())
}

// HTTPHandlers collects every use case the HTTP server dispatches to.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		GetCart:            queries.NewGetCartQueryHandler(c.gormDB),
		AddCartItem:        c.CreateAddCartItemCommandHandler(),
		EditCartItem:       c.CreateEditCartItemCommandHandler(),
		UpdateCartQuantity: c.CreateUpdateCartQuantityCommandHandler(),
		RemoveCartItem:     c.CreateRemoveCartItemCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),

		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		ListOrders:     queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:       queries.NewGetOrderQueryHandler(c.gormDB),
		AcceptOrder:    c.CreateAcceptOrderCommandHandler(),
		CompleteOrder:  c.CreateCompleteOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		ListAllOrders:  queries.NewListAllOrdersQueryHandler(c.gormDB),
		SetOrderStatus: c.CreateSetOrderStatusCommandHandler(),

		ListNotifications:      queries.NewListNotificationsQueryHandler(c.gormDB),
		UnreadCount:            queries.NewGetUnreadCountQueryHandler(c.gormDB, c.counter, c.logger),
		MarkNotificationRead:   c.CreateMarkNotificationReadCommandHandler(),
		DeleteNotification:     c.CreateDeleteNotificationCommandHandler(),
		DeleteAllNotifications: c.CreateDeleteAllNotificationsCommandHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.HTTPHandlers(), auth.NewVerifier(c.cfg.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeReadNotificationsCommandHandler(), jobs.PurgeSettings{
		Schedule:  c.cfg.Notifications.PurgeSchedule,
		Retention: c.cfg.Notifications.Retention,
	}, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type disabledPublisher struct{}

func (disabledPublisher) Publish(context.Context, ports.OrderEvent) error {
	return nil
}

// disabledCounter reports every lookup as a miss so counts come from the store.
type disabledCounter struct{}

func (disabledCounter) Get(context.Context, kernel.UUID) (int64, bool, error) {
	return 0, false, nil
}

func (disabledCounter) Set(context.Context, kernel.UUID, int64) error {
	return nil
}

func (disabledCounter) Invalidate(context.Context, kernel.UUID) error {
	return nil
}
