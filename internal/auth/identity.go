package auth

import "github.com/labstack/echo/v4"

const identityContextKey = "identity"

// Identity is the resolved caller of a request: either anonymous or
// authenticated as a single user through a single session.
type Identity struct {
	authenticated bool
	userID        uint
	sessionID     string
}

// Anonymous returns the identity of a caller without a valid session.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity of userID acting through sessionID.
func Authenticated(userID uint, sessionID string) Identity {
	return Identity{authenticated: true, userID: userID, sessionID: sessionID}
}

// IsAuthenticated reports whether the caller holds a live session.
func (i Identity) IsAuthenticated() bool { return i.authenticated }

// UserID returns the user id and true for authenticated identities.
func (i Identity) UserID() (uint, bool) {
	return i.userID, i.authenticated
}

// SessionID returns the session the identity was resolved from, empty when anonymous.
func (i Identity) SessionID() string { return i.sessionID }

// IdentityFrom returns the identity stored on c by the session middleware.
// Requests that never passed through the middleware are anonymous.
func IdentityFrom(c echo.Context) Identity {
	if id, ok := c.Get(identityContextKey).(Identity); ok {
		return id
	}
	return Anonymous()
}

func setIdentity(c echo.Context, id Identity) {
	c.Set(identityContextKey, id)
}
