package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "taskphoto.com/taskphoto/internal/http/middlewares"
)

const loginPath = "/login"

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, logger *zap.Logger) {
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Validator = h.validator

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger.Named("access")))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute, logger))
	e.Use(middleware.Actor(h.userService, loginPath))

	e.POST(loginPath, h.Login)

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks/:id/start", h.StartWork)
	e.POST("/tasks/:id/submit", h.SubmitReport)
	e.POST("/tasks/:id/approve", h.Approve)
	e.POST("/tasks/:id/reject", h.Reject)

	e.GET("/review", h.ReviewQueue)
	e.GET("/stats", h.Stats)
	e.GET("/reports/assignees", h.AssigneeReport)
	e.GET("/me", h.Profile)

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/users/executors", h.Executors)
	e.PATCH("/users/:id/active", h.ToggleActive)
	e.DELETE("/users/:id", h.DeleteUser)

	e.GET("/notifications", h.ListNotifications)
	e.POST("/notifications/read", h.MarkAllRead)
}
