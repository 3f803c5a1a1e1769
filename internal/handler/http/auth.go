package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/service"
	"github.com/qrlogix/qrlogix-server/internal/store"
	"github.com/qrlogix/qrlogix-server/internal/utils"
	"github.com/qrlogix/qrlogix-server/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing required signup fields")
			writeFailure(w, http.StatusBadRequest, msgAllFieldsRequired)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeFailure(w, http.StatusBadRequest, msgEmailExists)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			writeDatabaseError(w, err)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user signed up")

	utils.WriteJSON(w, models.SignupResponse{
		Success: true,
		Message: msgUserCreated,
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing required login fields")
			writeFailure(w, http.StatusBadRequest, msgEmailPasswordNeeded)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			writeFailure(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeDatabaseError(w, err)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, http.StatusInternalServerError, msgServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: msgLoginSuccessful,
		User:    foundUser.Sanitized(),
		Token:   token.SignedString,
	}, http.StatusOK)
}
