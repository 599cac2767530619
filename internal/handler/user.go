package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	auth    *service.AuthService
	queries *service.QueryService
}

func NewUserHandler(s *server.Server, auth *service.AuthService, queries *service.QueryService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		auth:    auth,
		queries: queries,
	}
}

// Register serves POST /users: creates the account and starts a session.
func (h *UserHandler) Register(c echo.Context, req *RegisterRequest) (*UserResponse, error) {
	user, err := h.auth.Register(c.Request().Context(), model.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	if err := h.startSession(c, user.ID); err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

// Login serves POST /users/login.
func (h *UserHandler) Login(c echo.Context, req *LoginRequest) (*UserResponse, error) {
	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, errs.NewUnauthorizedError("Invalid email or password", true, nil)
		}
		return nil, err
	}

	if err := h.startSession(c, user.ID); err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

// Logout serves POST /users/logout by expiring the session cookie.
func (h *UserHandler) Logout(c echo.Context, _ *EmptyRequest) error {
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))
	return nil
}

// Me serves GET /users/me for the session user.
func (h *UserHandler) Me(c echo.Context, _ *EmptyRequest) (*UserResponse, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false, errs.LoginRedirect())
	}

	result := h.queries.GetUserByID(c.Request().Context(), userID)
	if !result.OK() {
		return nil, result.Err
	}
	if result.Value == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}
	return &UserResponse{User: result.Value}, nil
}

func (h *UserHandler) startSession(c echo.Context, userID int64) error {
	token, expiresAt, err := h.auth.IssueToken(userID)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie(token, expiresAt))
	return nil
}

func (h *UserHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   !h.server.Config.IsLocal(),
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}
