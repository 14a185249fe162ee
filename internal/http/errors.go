package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "taskphoto.com/taskphoto/internal/errors"
)

type ErrorResponse struct {
	Error string         `json:"error"`
	Kind  apperrors.Kind `json:"kind"`
}

// ErrorHandler renders every error as {"error", "kind"} with the status its Exception carries.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperrors.StatusCode(err)
		kind := apperrors.KindOf(err)
		message := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			kind = kindForStatus(he.Code)
			message = fmt.Sprint(he.Message)
		} else if kind == apperrors.KindInternal {
			logger.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			message = http.StatusText(http.StatusInternalServerError)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ErrorResponse{Error: message, Kind: kind})
		}
		if err != nil {
			logger.Error("failed to write error response", zap.Error(err))
		}
	}
}

func kindForStatus(status int) apperrors.Kind {
	switch {
	case status == http.StatusNotFound:
		return apperrors.KindNotFound
	case status == http.StatusTooManyRequests:
		return apperrors.KindRateLimited
	case status >= 400 && status < 500:
		return apperrors.KindValidation
	default:
		return apperrors.KindInternal
	}
}
