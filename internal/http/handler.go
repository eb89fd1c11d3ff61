package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/internal/http/validators"
	"todo-list.com/todo-list/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	logger      log.FieldLogger
}

func NewHandler(taskService *services.TaskService, logger log.FieldLogger) *Handler {
	return &Handler{
		taskService: taskService,
		logger:      logger,
	}
}

type indexPage struct {
	Categories []string
	Tasks      []dto.TaskResponse
}

func (h *Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	page := indexPage{
		Categories: categoryNames(h.taskService),
		Tasks:      dto.NewTaskResponses(h.taskService.ListTasks(ctx)),
	}
	return c.Render(http.StatusOK, "index.html", page)
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoryNames(h.taskService))
}

// ListTasks always answers 200; storage faults surface as an empty array.
func (h *Handler) ListTasks(c echo.Context) error {
	tasks := h.taskService.ListTasks(c.Request().Context())
	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) SearchTasks(c echo.Context) error {
	tasks, err := h.taskService.SearchTasks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return failure(err, "an error occurred while searching todos")
	}
	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return failure(err, "an error occurred while fetching the todo")
	}
	return c.JSON(http.StatusOK, dto.NewTaskResponse(*task))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	category, dueDate, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Task, category, dueDate)
	if err != nil {
		return failure(err, "an error occurred while adding the todo")
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(*task))
}

// UpdateTask validates the id and body before looking the task up, so an
// unknown id with an invalid body answers 400 rather than 404.
func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	var body map[string]json.RawMessage
	if err := new(echo.DefaultBinder).BindBody(c, &body); err != nil {
		return apperrors.ErrInvalidJSON
	}

	patch, err := validators.ParseUpdateTaskRequest(body)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return failure(err, "an error occurred while updating the todo")
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(*task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return failure(err, "an error occurred while deleting the todo")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.taskService.Healthy(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// failure keeps client-facing errors as they are and hides everything else
// behind a generic message.
func failure(err error, message string) error {
	if apperrors.StatusCode(err) != http.StatusInternalServerError {
		return err
	}
	return echo.NewHTTPError(http.StatusInternalServerError, message).SetInternal(err)
}

func categoryNames(s *services.TaskService) []string {
	categories := s.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return names
}
