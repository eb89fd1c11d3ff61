package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	middleware "todo-list.com/todo-list/internal/http/middlewares"
)

// NewServer builds an echo instance with the JSON serializer, renderer and
// error handler this API relies on.
func NewServer(logger log.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = SonicJSONSerializer{}
	e.Renderer = NewTemplateRenderer()
	e.HTTPErrorHandler = ErrorHandler(logger)
	return e
}

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(h.logger))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/", h.Index)
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/categories", h.ListCategories)
	api.GET("/todos", h.ListTasks)
	api.POST("/todos", h.CreateTask)
	api.GET("/todos/search", h.SearchTasks)
	api.GET("/todos/:id", h.GetTask)
	api.PUT("/todos/:id", h.UpdateTask)
	api.DELETE("/todos/:id", h.DeleteTask)
}
