package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the name of the cookie carrying the signed session token.
const CookieName = "session"

// SessionManager starts, resolves and ends cookie sessions.
type SessionManager struct {
	tokens *SessionTokens
	store  SessionStore
	ttl    time.Duration
	secure bool
}

// NewSessionManager creates a session manager. A zero ttl means sessions
// last until logout.
func NewSessionManager(tokens *SessionTokens, store SessionStore, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		tokens: tokens,
		store:  store,
		ttl:    ttl,
		secure: secure,
	}
}

// Start records a new session for userID and returns the cookie to send.
func (m *SessionManager) Start(ctx context.Context, userID uint) (*http.Cookie, error) {
	sessionID := uuid.NewString()
	if err := m.store.Save(ctx, sessionID, userID, m.ttl); err != nil {
		return nil, err
	}

	token, err := m.tokens.Issue(userID, sessionID, m.ttl)
	if err != nil {
		_ = m.store.Delete(ctx, sessionID)
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	cookie := m.baseCookie()
	cookie.Value = token
	if m.ttl > 0 {
		cookie.MaxAge = int(m.ttl.Seconds())
		cookie.Expires = time.Now().Add(m.ttl)
	}
	return cookie, nil
}

// End deletes the session record and returns a cookie that clears the client copy.
func (m *SessionManager) End(ctx context.Context, sessionID string) (*http.Cookie, error) {
	if sessionID != "" {
		if err := m.store.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	cookie := m.baseCookie()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	return cookie, nil
}

// Authenticate turns verified claims into an identity. Claims whose session
// record is gone, or bound to a different user, resolve to anonymous.
func (m *SessionManager) Authenticate(ctx context.Context, claims *SessionClaims) (Identity, error) {
	if claims == nil || claims.ID == "" {
		return Anonymous(), nil
	}

	userID, found, err := m.store.Lookup(ctx, claims.ID)
	if err != nil {
		return Anonymous(), err
	}
	if !found || userID != claims.UserID {
		return Anonymous(), nil
	}
	return Authenticated(userID, claims.ID), nil
}

func (m *SessionManager) baseCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
