package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Cookie settings
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	// Context keys
	ContextKeySessionID = "session_id"
)

// SessionConfig holds cookie configuration for the session middleware
type SessionConfig struct {
	CookieDomain   string        // e.g., "sportsstore.com" or "" for current domain
	CookiePath     string        // Default: "/"
	CookieSecure   bool          // true for HTTPS only
	CookieSameSite http.SameSite // Strict, Lax, or None
}

// DefaultSessionConfig returns secure default configuration
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true, // HTTPS only (set false for localhost dev)
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// Session identifies the browsing session that owns the shopping cart.
//
// Flow:
// 1. Read session_id from cookie
// 2. If missing or malformed, generate a new UUID and set the cookie
// 3. Set session_id in context for downstream handlers
//
// The cart store keys carts by this session ID; one session owns exactly
// one cart, so handlers never share a cart across sessions.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionCookie(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		c.Set(ContextKeySessionID, sessionID)

		c.Next()
	}
}

// getSessionCookie retrieves the session ID from the cookie
func getSessionCookie(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}

	// Validate UUID format for security
	if _, err := uuid.Parse(sessionID); err != nil {
		return "" // Invalid format → generate new
	}

	return sessionID
}

// setSessionCookie sets a secure session cookie
func setSessionCookie(c *gin.Context, sessionID string, config SessionConfig) {
	c.SetSameSite(config.CookieSameSite)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		SessionMaxAge,
		config.CookiePath,
		config.CookieDomain,
		config.CookieSecure,
		true, // httpOnly (prevent XSS)
	)
}

// GetSessionID retrieves the session ID from context
func GetSessionID(c *gin.Context) (string, error) {
	sessionID, exists := c.Get(ContextKeySessionID)
	if !exists {
		return "", ErrSessionIDNotFound
	}

	sid, ok := sessionID.(string)
	if !ok || sid == "" {
		return "", ErrInvalidSessionID
	}

	return sid, nil
}

var (
	ErrSessionIDNotFound = fmt.Errorf("session_id not found in context")
	ErrInvalidSessionID  = fmt.Errorf("invalid session_id in context")
)
