package models

// SignupRequest is the JSON body of the signup endpoint.
// All four fields are required; validation happens in the service layer
// before any database access.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the JSON body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateQRRequest is the JSON body of the create-qr endpoint.
// UserID identifies the owning identity; the name and email fields are
// denormalized into the issued record as-is.
type CreateQRRequest struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
