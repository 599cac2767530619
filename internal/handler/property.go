package handler

import (
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type PropertyHandler struct {
	Handler
	queries *service.QueryService
}

func NewPropertyHandler(s *server.Server, queries *service.QueryService) *PropertyHandler {
	return &PropertyHandler{
		Handler: NewHandler(s),
		queries: queries,
	}
}

// ListProperties serves GET /api/properties.
func (h *PropertyHandler) ListProperties(c echo.Context, req *ListPropertiesRequest) (*PropertiesResponse, error) {
	result := h.queries.GetProperties(c.Request().Context(), model.PropertyFilter{City: req.City}, req.Limit)
	if !result.OK() {
		return nil, result.Err
	}
	return &PropertiesResponse{Properties: result.Value}, nil
}

// CreateProperty serves POST /api/properties for the session user.
func (h *PropertyHandler) CreateProperty(c echo.Context, req *CreatePropertyRequest) (*PropertyResponse, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false, errs.LoginRedirect())
	}

	input := req.NewProperty
	input.OwnerID = utils.Ptr(userID)

	result := h.queries.AddProperty(c.Request().Context(), input)
	if !result.OK() {
		return nil, result.Err
	}
	return &PropertyResponse{Property: result.Value}, nil
}
