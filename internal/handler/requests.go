package handler

import (
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
)

// EmptyRequest is used by routes without a payload.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

type ListPropertiesRequest struct {
	City  string `query:"city"`
	Limit int    `query:"limit" validate:"min=0"`
}

func (r *ListPropertiesRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePropertyRequest carries the owner-supplied property fields.
//
// Fields are not checked here: a missing field reaches the store as NULL
// and the table constraints reject it. owner_id in the body is ignored
// in favor of the session user.
type CreatePropertyRequest struct {
	model.NewProperty
}

func (r *CreatePropertyRequest) Validate() error {
	return nil
}

type ListReservationsRequest struct {
	Limit int `query:"limit" validate:"min=0"`
}

func (r *ListReservationsRequest) Validate() error {
	return validation.Struct(r)
}

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Validate also caps the password at maxPasswordBytes bytes. The max tag
// counts characters, not bytes.
func (r *RegisterRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if len(r.Password) > maxPasswordBytes {
		return validation.CustomValidationErrors{
			{Field: "password", Message: fmt.Sprintf("must not exceed %d bytes", maxPasswordBytes)},
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

type UserResponse struct {
	User *model.User `json:"user"`
}

type PropertiesResponse struct {
	Properties []model.RatedProperty `json:"properties"`
}

type PropertyResponse struct {
	Property *model.Property `json:"property"`
}

type ReservationsResponse struct {
	Reservations []model.Reservation `json:"reservations"`
}
