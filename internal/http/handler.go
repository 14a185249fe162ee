package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskphoto.com/taskphoto/internal/constants"
	dto "taskphoto.com/taskphoto/internal/data_models"
	apperrors "taskphoto.com/taskphoto/internal/errors"
	middleware "taskphoto.com/taskphoto/internal/http/middlewares"
	"taskphoto.com/taskphoto/internal/http/validators"
	"taskphoto.com/taskphoto/internal/lifecycle"
	model "taskphoto.com/taskphoto/internal/models"
	"taskphoto.com/taskphoto/internal/services"
)

type Handler struct {
	taskService         *services.TaskService
	userService         *services.UserService
	authService         *services.AuthService
	notificationService *services.NotificationService
	validator           *validators.RequestValidator
}

func NewHandler(
	taskService *services.TaskService,
	userService *services.UserService,
	authService *services.AuthService,
	notificationService *services.NotificationService,
) *Handler {
	return &Handler{
		taskService:         taskService,
		userService:         userService,
		authService:         authService,
		notificationService: notificationService,
		validator:           validators.New(),
	}
}

type taskView struct {
	Task           *model.Task        `json:"task"`
	AllowedActions []lifecycle.Action `json:"allowed_actions"`
}

func actor(c echo.Context) (lifecycle.Actor, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return lifecycle.Actor{}, apperrors.ErrIdentityRequired
	}
	return a, nil
}

func pathID(c echo.Context, missing error) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, missing
	}
	return uint(id), nil
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperrors.Validation("invalid JSON payload")
	}
	return nil
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.ErrCredentialsRequired
	}
	if err := h.validator.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateTask(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(h.validator, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), a, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Deadline:    req.Deadline,
		Location:    req.Location,
		Priority:    constants.Priority(req.Priority),
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, apperrors.ErrTaskIDRequired)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, taskView{Task: task, AllowedActions: allowed(*task, a)})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) StartWork(c echo.Context) error {
	return h.transition(c, func(a lifecycle.Actor, id uint) (*model.Task, error) {
		return h.taskService.StartWork(c.Request().Context(), id, a)
	})
}

func (h *Handler) SubmitReport(c echo.Context) error {
	var req dto.SubmitReportRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateSubmitReportRequest(h.validator, &req); err != nil {
		return err
	}

	return h.transition(c, func(a lifecycle.Actor, id uint) (*model.Task, error) {
		return h.taskService.SubmitReport(c.Request().Context(), id, a, req.PhotoURL)
	})
}

func (h *Handler) Approve(c echo.Context) error {
	return h.transition(c, func(a lifecycle.Actor, id uint) (*model.Task, error) {
		return h.taskService.Approve(c.Request().Context(), id, a)
	})
}

func (h *Handler) Reject(c echo.Context) error {
	return h.transition(c, func(a lifecycle.Actor, id uint) (*model.Task, error) {
		return h.taskService.Reject(c.Request().Context(), id, a)
	})
}

func (h *Handler) transition(c echo.Context, apply func(lifecycle.Actor, uint) (*model.Task, error)) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, apperrors.ErrTaskIDRequired)
	if err != nil {
		return err
	}

	task, err := apply(a, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, taskView{Task: task, AllowedActions: allowed(*task, a)})
}

func (h *Handler) ReviewQueue(c echo.Context) error {
	q, err := h.taskService.ReviewQueue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.taskService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) AssigneeReport(c echo.Context) error {
	report, err := h.taskService.AssigneeReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"assignees": report})
}

// Profile reports the caller's own tasks and approval rate.
func (h *Handler) Profile(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	summary, tasks, err := h.taskService.AssigneeSummary(c.Request().Context(), a.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": summary, "tasks": tasks})
}

func (h *Handler) ListUsers(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	users, err := h.userService.ListUsers(c.Request().Context(), a)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(users), "users": users})
}

func (h *Handler) Executors(c echo.Context) error {
	users, err := h.userService.Executors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(users), "users": users})
}

func (h *Handler) CreateUser(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.ErrUserFieldsRequired
	}
	if err := h.validator.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.Request().Context(), a, services.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       constants.Role(req.Role),
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) ToggleActive(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, apperrors.ErrUserIDRequired)
	if err != nil {
		return err
	}

	user, err := h.userService.ToggleActive(c.Request().Context(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, apperrors.ErrUserIDRequired)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), a, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := h.notificationService.List(ctx)
	if err != nil {
		return err
	}
	unread, err := h.notificationService.UnreadCount(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"unread":        unread,
		"notifications": list,
	})
}

func (h *Handler) MarkAllRead(c echo.Context) error {
	marked, err := h.notificationService.MarkAllRead(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"marked": marked})
}

func allowed(task model.Task, a lifecycle.Actor) []lifecycle.Action {
	actions := lifecycle.AllowedActions(task, a)
	if actions == nil {
		return []lifecycle.Action{}
	}
	return actions
}
