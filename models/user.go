package models

import "time"

// User represents an identity record — an end-user or employee account used
// for authentication. One row per signup; the record is never updated or
// deleted by this service.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"id"`

	// FirstName is the user's given name as supplied at signup.
	FirstName string `json:"firstName"`

	// LastName is the user's family name as supplied at signup.
	LastName string `json:"lastName"`

	// Email is the unique login identifier of the account.
	// Uniqueness is enforced by a database constraint.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// Never exposed via JSON and never stored in plaintext.
	Password string `json:"-"`

	// UserType classifies the account ("user" or "employee").
	// Assigned by the server from configuration, not by the client.
	UserType string `json:"userType"`

	// CreatedAt is the timestamp the account was created, set by the database.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last modification, set by the database.
	UpdatedAt time.Time `json:"-"`
}

// Sanitized returns a copy of the user safe to embed in API responses:
// credential and timestamp fields are zeroed so only identity attributes
// survive serialization.
func (u User) Sanitized() User {
	return User{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		UserType:  u.UserType,
	}
}
