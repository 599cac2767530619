package model

// User is a row of the users table.
//
// Password is whatever the caller stored (a bcrypt hash when written
// through the auth service). It is never serialized to clients.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser is the input of a users insert.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
