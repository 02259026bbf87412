package service

import (
	"fmt"

	"github.com/MKhiriev/stream-console/internal/adapter"
	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/models"
)

type Services struct {
	SessionService SessionService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(cfg config.ConsoleApp, buildInfo models.AppBuildInfo, store SessionStore, api adapter.APIClient, log *logger.Logger) (*Services, error) {
	sessionSvc, err := NewSessionService(store, api, cfg.ProfileNameExpr, log)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	appInfoSvc, err := NewAppInfoService(cfg, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SessionService: sessionSvc,
		AdminService:   NewAdminService(api, log),
		AppInfoService: appInfoSvc,
	}, nil
}
