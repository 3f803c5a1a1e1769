package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/service"
	"github.com/qrlogix/qrlogix-server/internal/utils"
	"github.com/qrlogix/qrlogix-server/models"
)

func (h *Handler) createQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateQRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	qr, created, err := h.services.QRService.IssueQRCode(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("missing required qr issuance fields")
			writeFailure(w, http.StatusBadRequest, msgAllFieldsRequired)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during qr issuance")
			writeDatabaseError(w, err)
			return
		}
	}

	// 201 for a fresh issuance, 200 when the user already had one; the
	// payload carries the same code either way.
	status := http.StatusOK
	message := msgQRAlreadyIssued
	if created {
		status = http.StatusCreated
		message = msgQRCreated
	}

	utils.WriteJSON(w, models.CreateQRResponse{
		Success: true,
		Message: message,
		QRCode:  qr.Code,
	}, status)
}

func (h *Handler) checkQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawUserID := r.URL.Query().Get("userId")
	if rawUserID == "" {
		writeFailure(w, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		log.Err(err).Str("userId", rawUserID).Msg("non-numeric user id")
		writeFailure(w, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	qr, found, err := h.services.QRService.GetQRCode(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeFailure(w, http.StatusBadRequest, msgUserIDRequired)
			return
		}
		log.Err(err).Msg("unexpected error occurred during qr lookup")
		writeDatabaseError(w, err)
		return
	}

	if !found {
		utils.WriteJSON(w, models.CheckQRResponse{
			Success: true,
			HasQR:   false,
			QRCode:  nil,
		}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.CheckQRResponse{
		Success:   true,
		HasQR:     true,
		QRCode:    &qr.Code,
		IsActive:  &qr.IsActive,
		CreatedAt: &qr.CreatedAt,
	}, http.StatusOK)
}
