package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *signupRequest) Validate() error {
	return Struct(r)
}

type listRequest struct {
	City  string `query:"city"`
	Limit int    `query:"limit" validate:"min=0,max=100"`
}

func (r *listRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "dates", Message: "end must follow start"}}
}

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":"Sue","email":"sue@example.com","password":"secret1"}`)

	req := &signupRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "sue@example.com", req.Email)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":"","email":"not-an-email","password":"abc"}`)

	err := BindAndValidate(c, &signupRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "email", Error: "must be a valid email address"},
		{Field: "password", Error: "must be at least 6 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidate_Query(t *testing.T) {
	c := newContext(http.MethodGet, "/api/properties?city=Vancouver&limit=5", "")

	req := &listRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "Vancouver", req.City)
	assert.Equal(t, 5, req.Limit)
}

func TestBindAndValidate_BadQueryType(t *testing.T) {
	c := newContext(http.MethodGet, "/api/properties?limit=ten", "")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, &listRequest{}), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":`)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, &signupRequest{}), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, &customRequest{}), &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "dates", Error: "end must follow start"}}, httpErr.Errors)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "post_code", toSnakeCase("PostCode"))
	assert.Equal(t, "limit", toSnakeCase("Limit"))
	assert.Equal(t, "number_of_bedrooms", toSnakeCase("NumberOfBedrooms"))
}
