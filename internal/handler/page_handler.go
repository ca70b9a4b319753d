package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tasktracker/internal/auth"
	"tasktracker/internal/service"
	"tasktracker/internal/view"
)

// PageHandler renders the home page.
type PageHandler struct {
	userService service.UserService
}

// NewPageHandler creates a page handler.
func NewPageHandler(userService service.UserService) *PageHandler {
	return &PageHandler{userService: userService}
}

// Home renders the home page for anonymous and signed-in callers alike.
func (h *PageHandler) Home(c echo.Context, id auth.Identity) error {
	page := view.PageContext{}

	if userID, ok := id.UserID(); ok {
		user, err := h.userService.GetUser(c.Request().Context(), userID)
		switch {
		case err == nil:
			page.User = &view.PageUser{ID: user.ID, Name: user.Name}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// session outlived its user; render as anonymous
		default:
			return err
		}
	}

	return c.Render(http.StatusOK, view.IndexPage, page)
}
