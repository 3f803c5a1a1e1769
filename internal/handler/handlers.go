// Package handler aggregates the transport-level handlers of the qrlogix
// server. Only HTTP exists today; the struct keeps the wiring point stable
// if another transport is ever added.
package handler

import (
	"github.com/qrlogix/qrlogix-server/internal/config"
	httphandler "github.com/qrlogix/qrlogix-server/internal/handler/http"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/service"
)

type Handlers struct {
	HTTP *httphandler.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, cfg.Identity, logger),
	}
}
