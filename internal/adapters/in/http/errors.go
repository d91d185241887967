package http

import (
	"errors"
	"net/http"

	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps the error taxonomy to an HTTP status.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrDuplicateService),
		errors.Is(err, errs.ErrTotalMismatch),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse renders err in the response envelope. Server errors are
// logged and replaced by a generic message.
func (s *Server) errorResponse(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, envelope{Success: false, Error: message})
}

// httpErrorHandler renders errors that escape handlers, such as unknown
// routes, in the same envelope.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if renderErr := s.errorResponse(c, err); renderErr != nil {
		s.logger.Error("error response was not written", zap.Error(renderErr))
	}
}
