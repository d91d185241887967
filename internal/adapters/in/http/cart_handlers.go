package http

import (
	"net/http"

	"laundry/internal/adapters/in/http/auth"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetCart godoc
//
//	@Summary	Get the caller's cart
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	cartResponse
//	@Failure	401	{object}	envelope
//	@Router		/cart [get]
func (s *Server) GetCart(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	query, err := queries.NewGetCartQuery(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	result, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}

	message := "Berhasil mengambil keranjang"
	if len(result.Items) == 0 {
		message = "Keranjang kosong"
	}
	return c.JSON(http.StatusOK, cartResponse{
		envelope:    ok(message),
		Items:       result.Items,
		TotalAmount: result.TotalAmount,
	})
}

// AddCartItem godoc
//
//	@Summary	Add a service line to the cart
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		addCartItemRequest	true	"Service line"
//	@Success	200		{object}	cartResponse
//	@Failure	400		{object}	envelope
//	@Failure	404		{object}	envelope
//	@Router		/cart/add [post]
func (s *Server) AddCartItem(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, err)
	}

	var serviceID *kernel.UUID
	if req.ServiceID != nil && *req.ServiceID != "" {
		id, err := kernel.UUIDFromString(*req.ServiceID)
		if err != nil {
			return s.errorResponse(c, errs.NewValueIsInvalidErrorWithCause("serviceId", err))
		}
		serviceID = &id
	}

	cmd, err := commands.NewAddCartItemCommand(actor, req.toInput(), req.IsEdit, serviceID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	updated, err := s.handlers.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	message := "Layanan berhasil ditambahkan"
	if req.IsEdit {
		message = "Layanan berhasil diperbarui"
	}
	return c.JSON(http.StatusOK, presentCart(message, updated))
}

// EditCartItem godoc
//
//	@Summary	Replace the contents of a cart item
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		serviceId	path		string				true	"Cart item id"
//	@Param		body		body		serviceLineRequest	true	"Service line"
//	@Success	200			{object}	cartResponse
//	@Failure	400			{object}	envelope
//	@Failure	404			{object}	envelope
//	@Router		/cart/items/{serviceId} [put]
func (s *Server) EditCartItem(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	itemID, err := pathUUID(c, "serviceId")
	if err != nil {
		return s.errorResponse(c, err)
	}

	var req serviceLineRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, err)
	}

	cmd, err := commands.NewEditCartItemCommand(actor, itemID, req.toInput())
	if err != nil {
		return s.errorResponse(c, err)
	}

	updated, err := s.handlers.EditCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, presentCart("Layanan berhasil diperbarui", updated))
}

// UpdateCartQuantity godoc
//
//	@Summary	Set the quantity of one item in a cart line
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		updateQuantityRequest	true	"Quantity change"
//	@Success	200		{object}	cartResponse
//	@Failure	400		{object}	envelope
//	@Failure	404		{object}	envelope
//	@Router		/cart/quantity [put]
func (s *Server) UpdateCartQuantity(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return s.errorResponse(c, err)
	}
	itemID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return s.errorResponse(c, errs.NewValueIsInvalidErrorWithCause("serviceId", err))
	}

	cmd, err := commands.NewUpdateCartQuantityCommand(actor, itemID, req.Service, req.ItemName, req.Quantity)
	if err != nil {
		return s.errorResponse(c, err)
	}

	updated, err := s.handlers.UpdateCartQuantity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, presentCart("Jumlah berhasil diperbarui", updated))
}

// RemoveCartItem godoc
//
//	@Summary	Remove an item from the cart
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Param		serviceId	path		string	true	"Cart item id"
//	@Success	200			{object}	cartResponse
//	@Failure	404			{object}	envelope
//	@Router		/cart/items/{serviceId} [delete]
func (s *Server) RemoveCartItem(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	itemID, err := pathUUID(c, "serviceId")
	if err != nil {
		return s.errorResponse(c, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(actor, itemID)
	if err != nil {
		return s.errorResponse(c, err)
	}

	updated, err := s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, presentCart("Item berhasil dihapus", updated))
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	cartResponse
//	@Router		/cart [delete]
func (s *Server) ClearCart(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	cmd, err := commands.NewClearCartCommand(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	cleared, err := s.handlers.ClearCart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, presentCart("Keranjang berhasil dikosongkan", cleared))
}
