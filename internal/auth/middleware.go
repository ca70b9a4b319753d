package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "tasktracker/internal/errors"
)

const tokenContextKey = "session_token"

// LoginPath is where page guards send anonymous callers.
const LoginPath = "/login"

// UserHandlerFunc handles a request on behalf of an authenticated user.
type UserHandlerFunc func(c echo.Context, userID uint) error

// IdentityHandlerFunc handles a request with the caller's resolved identity.
type IdentityHandlerFunc func(c echo.Context, id Identity) error

// Middleware resolves the session cookie of every request into an Identity.
// Missing, malformed or forged cookies are not errors: the request simply
// continues as anonymous.
func (m *SessionManager) Middleware() echo.MiddlewareFunc {
	parseCookie := echojwt.WithConfig(echojwt.Config{
		ContextKey:  tokenContextKey,
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(_ echo.Context, raw string) (interface{}, error) {
			claims, err := m.tokens.Parse(raw)
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: func(echo.Context, error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		resolve := func(c echo.Context) error {
			identity := Anonymous()
			if claims, ok := c.Get(tokenContextKey).(*SessionClaims); ok {
				resolved, err := m.Authenticate(c.Request().Context(), claims)
				if err != nil {
					return err
				}
				identity = resolved
			}
			setIdentity(c, identity)
			return next(c)
		}
		return parseCookie(resolve)
	}
}

// RequireUser guards JSON API routes: anonymous callers get 401.
func RequireUser(h UserHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := IdentityFrom(c).UserID()
		if !ok {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return h(c, userID)
	}
}

// RequirePage guards page routes: anonymous callers are redirected to the login page.
func RequirePage(h IdentityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := IdentityFrom(c)
		if !id.IsAuthenticated() {
			return c.Redirect(http.StatusFound, LoginPath)
		}
		return h(c, id)
	}
}

// WithIdentity passes the identity to pages that serve anonymous and authenticated callers alike.
func WithIdentity(h IdentityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h(c, IdentityFrom(c))
	}
}
