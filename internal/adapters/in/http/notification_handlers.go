package http

import (
	"net/http"

	"laundry/internal/adapters/in/http/auth"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListNotifications godoc
//
//	@Summary	List the caller's notifications, newest first
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	notificationsResponse
//	@Router		/notifications [get]
func (s *Server) ListNotifications(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	query, err := queries.NewListNotificationsQuery(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	list, err := s.handlers.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, notificationsResponse{
		envelope:      ok("Berhasil mengambil notifikasi"),
		Notifications: list,
	})
}

// UnreadCount godoc
//
//	@Summary	Count unread notifications
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	unreadCountResponse
//	@Router		/notifications/unread-count [get]
func (s *Server) UnreadCount(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	query, err := queries.NewGetUnreadCountQuery(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	count, err := s.handlers.UnreadCount.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, unreadCountResponse{envelope: ok(""), Count: count})
}

// MarkNotificationRead godoc
//
//	@Summary	Mark a notification as read
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		notificationId	path		string	true	"Notification id"
//	@Success	200				{object}	notificationResponse
//	@Failure	404				{object}	envelope
//	@Router		/notifications/{notificationId}/read [put]
func (s *Server) MarkNotificationRead(c echo.Context) error {
	cmd, err := s.notificationCommand(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	updated, err := s.handlers.MarkNotificationRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, notificationResponse{
		envelope:     ok("Notifikasi ditandai sudah dibaca"),
		Notification: presentNotification(updated),
	})
}

// DeleteNotification godoc
//
//	@Summary	Delete a notification
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		notificationId	path		string	true	"Notification id"
//	@Success	200				{object}	envelope
//	@Failure	404				{object}	envelope
//	@Router		/notifications/{notificationId} [delete]
func (s *Server) DeleteNotification(c echo.Context) error {
	cmd, err := s.notificationCommand(c)
	if err != nil {
		return s.errorResponse(c, err)
	}

	if err := s.handlers.DeleteNotification.Handle(c.Request().Context(), cmd); err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ok("Notifikasi berhasil dihapus"))
}

// DeleteAllNotifications godoc
//
//	@Summary	Delete every notification of the caller
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	deletedResponse
//	@Failure	404	{object}	envelope
//	@Router		/notifications/all [delete]
func (s *Server) DeleteAllNotifications(c echo.Context) error {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return s.errorResponse(c, err)
	}
	cmd, err := commands.NewDeleteAllNotificationsCommand(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	deleted, err := s.handlers.DeleteAllNotifications.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, deletedResponse{
		envelope:     ok("Semua notifikasi berhasil dihapus"),
		DeletedCount: deleted,
	})
}

func (s *Server) notificationCommand(c echo.Context) (commands.NotificationCommand, error) {
	actor, err := auth.ActorFrom(c)
	if err != nil {
		return commands.NotificationCommand{}, err
	}
	id, err := pathUUID(c, "notificationId")
	if err != nil {
		return commands.NotificationCommand{}, err
	}
	return commands.NewNotificationCommand(actor, id)
}
