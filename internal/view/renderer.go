package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names understood by the renderer.
const (
	IndexPage    = "index.html"
	LoginPage    = "login.html"
	RegisterPage = "register.html"
)

// PageUser is the part of a user a page may display.
type PageUser struct {
	ID   uint
	Name string
}

// PageContext is the data every page receives. User is nil for anonymous callers.
type PageContext struct {
	User *PageUser
}

// Authenticated reports whether the page is rendered for a signed-in user.
func (p PageContext) Authenticated() bool { return p.User != nil }

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render writes the named page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
