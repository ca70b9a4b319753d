package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktracker/internal/auth"
	"tasktracker/internal/service"
	"tasktracker/internal/view"
)

// Page paths used for redirects.
const (
	HomePath     = "/"
	LoginPath    = auth.LoginPath
	RegisterPath = "/register"
)

// AuthHandler handles the form-based registration and session endpoints.
// Failures are never reported to the caller: the browser is sent back to
// the form it came from.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterForm represents a user registration form.
type RegisterForm struct {
	Email    string `form:"email" validate:"required,max=80"`
	Name     string `form:"name" validate:"required,max=80"`
	Password string `form:"password" validate:"required,max=72"`
}

// LoginForm represents a login form.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.RegisterPage, view.PageContext{})
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.LoginPage, view.PageContext{})
}

// Register creates the account and sends the browser to the login page.
// Invalid input and already registered emails go back to the form.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, RegisterPath)
	}
	if err := c.Validate(&form); err != nil {
		return c.Redirect(http.StatusFound, RegisterPath)
	}

	if _, err := h.authService.Register(c.Request().Context(), form.Email, form.Name, form.Password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) || errors.Is(err, service.ErrPasswordTooLong) {
			return c.Redirect(http.StatusFound, RegisterPath)
		}
		return err
	}

	return c.Redirect(http.StatusFound, LoginPath)
}

// Login starts a session and sends the browser home. Bad credentials go
// back to the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, LoginPath)
	}
	if err := c.Validate(&form); err != nil {
		return c.Redirect(http.StatusFound, LoginPath)
	}

	cookie, _, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Redirect(http.StatusFound, LoginPath)
		}
		return err
	}

	c.SetCookie(cookie)
	return c.Redirect(http.StatusFound, HomePath)
}

// Logout ends the caller's session.
func (h *AuthHandler) Logout(c echo.Context, id auth.Identity) error {
	cookie, err := h.authService.Logout(c.Request().Context(), id.SessionID())
	if err != nil {
		return err
	}

	c.SetCookie(cookie)
	return c.Redirect(http.StatusFound, LoginPath)
}
