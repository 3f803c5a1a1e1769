package http

import (
	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/service"
)

type Handler struct {
	services *service.Services

	// qrEnabled controls whether the create-qr and check-qr endpoints are
	// present in the dispatch table (the employee deployment serves them,
	// a plain identity deployment may not).
	qrEnabled bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, identity config.Identity, logger *logger.Logger) *Handler {
	logger.Info().Bool("qr_endpoints", identity.QREnabled()).Msg("http handler created")
	return &Handler{
		services:  services,
		qrEnabled: identity.QREnabled(),
		logger:    logger,
	}
}
