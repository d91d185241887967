// Package http exposes the laundry use cases over Echo.
//
//	@title						Laundry API
//	@version					1.0
//	@description				Cart, order and notification endpoints of the laundry backend.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package http

import (
	"context"
	"net/http"

	"laundry/internal/adapters/in/http/auth"
	_ "laundry/internal/adapters/in/http/docs" // registers the swagger document
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// Handler is satisfied by every command and query handler that returns a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// ErrHandler is satisfied by handlers that return only an error.
type ErrHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers lists the use cases the server dispatches to.
type Handlers struct {
	GetCart            Handler[queries.GetCartQuery, queries.GetCartQueryResponse]
	AddCartItem        Handler[commands.AddCartItemCommand, *cart.Cart]
	EditCartItem       Handler[commands.EditCartItemCommand, *cart.Cart]
	UpdateCartQuantity Handler[commands.UpdateCartQuantityCommand, *cart.Cart]
	RemoveCartItem     Handler[commands.RemoveCartItemCommand, *cart.Cart]
	ClearCart          Handler[commands.ClearCartCommand, *cart.Cart]

	CreateOrder    Handler[commands.CreateOrderCommand, *order.Order]
	ListOrders     Handler[queries.ListOrdersQuery, []queries.OrderView]
	GetOrder       Handler[queries.GetOrderQuery, queries.OrderView]
	AcceptOrder    Handler[commands.OrderActionCommand, *order.Order]
	CompleteOrder  Handler[commands.OrderActionCommand, *order.Order]
	CancelOrder    Handler[commands.OrderActionCommand, *order.Order]
	ListAllOrders  Handler[queries.ListAllOrdersQuery, []queries.AdminOrderView]
	SetOrderStatus Handler[commands.SetOrderStatusCommand, *order.Order]

	ListNotifications      Handler[queries.ListNotificationsQuery, []queries.NotificationView]
	UnreadCount            Handler[queries.GetUnreadCountQuery, int64]
	MarkNotificationRead   Handler[commands.NotificationCommand, *notification.Notification]
	DeleteNotification     ErrHandler[commands.NotificationCommand]
	DeleteAllNotifications Handler[commands.DeleteAllNotificationsCommand, int64]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	verifier *auth.Verifier
	logger   *zap.Logger
}

func NewServer(handlers Handlers, verifier *auth.Verifier, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		verifier: verifier,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// Register installs middleware and routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.httpErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", auth.Middleware(s.verifier, s.errorResponse))

	api.GET("/cart", s.GetCart)
	api.POST("/cart/add", s.AddCartItem)
	api.PUT("/cart/items/:serviceId", s.EditCartItem)
	api.PUT("/cart/quantity", s.UpdateCartQuantity)
	api.DELETE("/cart/items/:serviceId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/accept", s.AcceptOrder)
	api.PUT("/orders/:orderId/complete", s.CompleteOrder)
	api.PUT("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/admin/orders", s.ListAllOrders)
	api.PUT("/admin/orders/:orderId/status", s.SetOrderStatus)

	api.GET("/notifications", s.ListNotifications)
	api.GET("/notifications/unread-count", s.UnreadCount)
	api.PUT("/notifications/:notificationId/read", s.MarkNotificationRead)
	api.DELETE("/notifications/all", s.DeleteAllNotifications)
	api.DELETE("/notifications/:notificationId", s.DeleteNotification)
}

// pathUUID binds a UUID path parameter the way generated oapi servers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
