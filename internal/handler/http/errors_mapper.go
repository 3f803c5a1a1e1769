package http

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/qrlogix/qrlogix-server/internal/utils"
	"github.com/qrlogix/qrlogix-server/models"
)

// Response messages shared across endpoints. The strings match the
// historical deployment verbatim; the mobile client displays some of them.
const (
	msgAllFieldsRequired    = "All fields are required"
	msgEmailExists          = "Email already exists"
	msgUserCreated          = "User created successfully"
	msgEmailPasswordNeeded  = "Email and password are required"
	msgInvalidCredentials   = "Invalid email or password"
	msgLoginSuccessful      = "Login successful"
	msgUserIDRequired       = "User ID is required"
	msgQRAlreadyIssued      = "User already has a QR code"
	msgQRCreated            = "QR code created successfully"
	msgDatabaseError        = "Database error"
	msgServerError          = "Server error"
	msgEndpointNotFound     = "Endpoint not found"
	msgInvalidJSON          = "Invalid JSON was passed"
)

// writeFailure sends the failure envelope with the given status and message.
func writeFailure(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status)
}

// writeDatabaseError sends the 500 "Database error" envelope, surfacing the
// driver's error text verbatim and, when the failure carries a PostgreSQL
// error, its SQLSTATE code.
func writeDatabaseError(w http.ResponseWriter, err error) {
	resp := models.ErrorResponse{
		Success: false,
		Message: msgDatabaseError,
		Error:   err.Error(),
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		resp.Code = pgErr.Code
	}

	utils.WriteJSON(w, resp, http.StatusInternalServerError)
}

// endpointNotFound is the terminal handler for every unmatched
// (endpoint, method) pair and every unknown path.
func (h *Handler) endpointNotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, msgEndpointNotFound)
}
