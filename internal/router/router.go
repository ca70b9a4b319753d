package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasktracker/internal/auth"
	"tasktracker/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	renderer echo.Renderer,
	sessions *auth.SessionManager,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Everything below resolves the session cookie before the handler runs.
	withSession := sessions.Middleware()

	// Pages
	e.GET(handler.HomePath, auth.WithIdentity(pageHandler.Home), withSession)
	e.GET("/home", auth.WithIdentity(pageHandler.Home), withSession)
	e.GET(handler.RegisterPath, authHandler.RegisterPage, withSession)
	e.POST(handler.RegisterPath, authHandler.Register, withSession)
	e.GET(handler.LoginPath, authHandler.LoginPage, withSession)
	e.POST(handler.LoginPath, authHandler.Login, withSession)
	e.GET("/logout", auth.RequirePage(authHandler.Logout), withSession)

	// JSON API
	api := e.Group("/api")
	api.GET("/tasks", auth.RequireUser(taskHandler.ListTasks), withSession)
	api.POST("/tasks", auth.RequireUser(taskHandler.CreateTask), withSession)
	api.PUT("/tasks/:id", auth.RequireUser(taskHandler.UpdateTask), withSession)
	api.DELETE("/tasks/:id", auth.RequireUser(taskHandler.DeleteTask), withSession)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
