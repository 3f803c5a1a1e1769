package models

import "time"

// QRCode represents an issued scannable identifier bound to exactly one
// identity. At most one record exists per user, enforced by a unique
// constraint on UserID.
//
// The name and email columns are denormalized copies taken at issuance time;
// they are intentionally not kept in sync with the identity record.
type QRCode struct {
	// QRCodeID is the internal unique identifier of the record,
	// assigned by the database on insert.
	QRCodeID int64 `json:"-"`

	// UserID is the identifier of the owning identity record.
	UserID int64 `json:"userId"`

	// Code is the QR identifier string itself, built as
	// "QL-<user id>-<milliseconds since epoch at issuance>".
	// The client renders it as an image through an external service;
	// this server only ever treats it as an opaque token.
	Code string `json:"qrCode"`

	// FirstName is the owner's given name captured at issuance.
	FirstName string `json:"firstName"`

	// LastName is the owner's family name captured at issuance.
	LastName string `json:"lastName"`

	// Email is the owner's email captured at issuance.
	Email string `json:"email"`

	// IsActive reports whether the code is currently usable.
	// Defaults to true on insert; toggled only by out-of-scope processes.
	IsActive bool `json:"isActive"`

	// CreatedAt is the issuance timestamp, set by the database.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the QRCode model.
func (q QRCode) TableName() string {
	return "qr_codes"
}
