package service

import (
	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/store"
)

type Services struct {
	AuthService        AuthService
	QRService          QRService
	DiagnosticsService DiagnosticsService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, cfg.Identity, logger),
		QRService:          NewQRService(storages.QRCodeRepository, logger),
		DiagnosticsService: NewDiagnosticsService(storages.DB, cfg.App, logger),
	}
}
