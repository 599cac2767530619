package middleware

import (
	"strings"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "lightbnb_session"

// TokenParser verifies a session token and returns the user id it was
// issued for. service.AuthService implements it.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthMiddleware holds the app Server so middleware can access shared deps
// like Logger and Config.
type AuthMiddleware struct {
	server *server.Server
	tokens TokenParser
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server, tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: tokens,
	}
}

// RequireAuth is an Echo middleware that enforces a valid session.
//
// High-level behavior:
//  1. It reads the token from the session cookie, falling back to an
//     "Authorization: Bearer" header.
//  2. A missing or invalid token returns a 401 carrying a login redirect.
//  3. On success it stores the user id in Echo context and re-scopes the
//     request logger with it.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		logger := GetLogger(c)

		token := sessionToken(c)
		if token == "" {
			logger.Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("missing session token")

			return errs.NewUnauthorizedError("Unauthorized", false, errs.LoginRedirect())
		}

		userID, err := auth.tokens.ParseToken(token)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("rejected session token")

			return errs.NewUnauthorizedError("Unauthorized", false, errs.LoginRedirect())
		}

		c.Set(UserIDKey, userID)
		withUser := logger.With().Int64("user_id", userID).Logger()
		setLogger(c, &withUser)

		withUser.Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

func sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
