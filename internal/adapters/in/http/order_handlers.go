package http

import (
	"context"
	"net/http"

	"laundry/internal/adapters/in/http/auth"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder godoc
//
//	@Summary	Check out service lines as a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		createOrderRequest	true	"Order"
//	@Success	201		{object}	orderResponse
//	@Failure	400		{object}	envelope
//	@Failure	500		{object}	envelope
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, err)
	}

	lines := make([]catalog.LineInput, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, line.toInput())
	}

	cmd, err := commands.NewCreateOrderCommand(actor, commands.CreateOrderParams{
		DeliveryMethod:    req.DeliveryMethod,
		PaymentMethod:     req.PaymentMethod,
		Items:             lines,
		DeliveryAddress:   req.DeliveryAddress,
		Notes:             req.Notes,
		DeliveryFee:       req.DeliveryFee,
		Subtotal:          req.Subtotal,
		TotalAmount:       req.TotalAmount,
		EstimatedDoneDate: req.EstimatedDoneDate,
	})
	if err != nil {
		return s.errorResponse(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, orderResponse{
		envelope: ok("Pesanan berhasil dibuat"),
		Order:    presentOrder(created),
	})
}

// ListOrders godoc
//
//	@Summary	List the caller's orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	ordersResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ordersResponse{envelope: ok("Berhasil mengambil pesanan"), Orders: orders})
}

// GetOrder godoc
//
//	@Summary	Get one order
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string	true	"Order id"
//	@Success	200		{object}	orderResponse
//	@Failure	404		{object}	envelope
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.errorResponse(c, err)
	}
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, orderResponse{envelope: ok("Berhasil mengambil pesanan"), Order: view})
}

// AcceptOrder godoc
//
//	@Summary	Accept an order (staff)
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string	true	"Order id"
//	@Success	200		{object}	orderResponse
//	@Failure	400		{object}	envelope
//	@Failure	403		{object}	envelope
//	@Failure	404		{object}	envelope
//	@Router		/orders/{orderId}/accept [put]
func (s *Server) AcceptOrder(c echo.Context) error {
	return s.orderAction(c, s.handlers.AcceptOrder, "Pesanan diterima")
}

// CompleteOrder godoc
//
//	@Summary	Complete an order (staff)
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string	true	"Order id"
//	@Success	200		{object}	orderResponse
//	@Failure	400		{object}	envelope
//	@Failure	403		{object}	envelope
//	@Failure	404		{object}	envelope
//	@Router		/orders/{orderId}/complete [put]
func (s *Server) CompleteOrder(c echo.Context) error {
	return s.orderAction(c, s.handlers.CompleteOrder, "Pesanan selesai")
}

// CancelOrder godoc
//
//	@Summary	Cancel an order (owner or staff)
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string	true	"Order id"
//	@Success	200		{object}	orderResponse
//	@Failure	400		{object}	envelope
//	@Failure	404		{object}	envelope
//	@Router		/orders/{orderId}/cancel [put]
func (s *Server) CancelOrder(c echo.Context) error {
	return s.orderAction(c, s.handlers.CancelOrder, "Pesanan dibatalkan")
}

func (s *Server) orderAction(
	c echo.Context,
	handler Handler[commands.OrderActionCommand, *order.Order],
	message string,
) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.errorResponse(c, err)
	}
	cmd, err := commands.NewOrderActionCommand(actor, orderID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return s.renderOrder(c, message, func(ctx context.Context) (*order.Order, error) {
		return handler.Handle(ctx, cmd)
	})
}

// ListAllOrders godoc
//
//	@Summary	List every order with its owner (staff)
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	adminOrdersResponse
//	@Failure	403	{object}	envelope
//	@Router		/admin/orders [get]
func (s *Server) ListAllOrders(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	query, err := queries.NewListAllOrdersQuery(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	orders, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, adminOrdersResponse{envelope: ok("Berhasil mengambil semua pesanan"), Orders: orders})
}

// SetOrderStatus godoc
//
//	@Summary	Move an order to a named status (staff)
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string				true	"Order id"
//	@Param		body	body		setStatusRequest	true	"Target status"
//	@Success	200		{object}	orderResponse
//	@Failure	400		{object}	envelope
//	@Failure	403		{object}	envelope
//	@Failure	404		{object}	envelope
//	@Router		/admin/orders/{orderId}/status [put]
func (s *Server) SetOrderStatus(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.errorResponse(c, err)
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, err)
	}
	cmd, err := commands.NewSetOrderStatusCommand(actor, orderID, req.Status)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return s.renderOrder(c, "Status pesanan diperbarui", func(ctx context.Context) (*order.Order, error) {
		return s.handlers.SetOrderStatus.Handle(ctx, cmd)
	})
}

func (s *Server) renderOrder(
	c echo.Context,
	message string,
	run func(ctx context.Context) (*order.Order, error),
) error {
	updated, err := run(c.Request().Context())
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, orderResponse{envelope: ok(message), Order: presentOrder(updated)})
}
