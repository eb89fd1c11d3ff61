package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
)

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(logger log.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := resolveError(err)
		if code >= http.StatusInternalServerError {
			logger.WithError(err).WithFields(log.Fields{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
			}).Error("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, dto.ErrorResponse{Error: message})
		}
		if writeErr != nil {
			logger.WithError(writeErr).Error("failed to write error response")
		}
	}
}

func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		return code, "internal server error"
	}
	return code, err.Error()
}
