package service

import (
	"github.com/MKhiriev/go-safe-auth/internal/authkit"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/models"
)

type ClientServices struct {
	SessionService ClientSessionService
	AppInfoService AppInfoService
}

func NewClientServices(opts models.AuthOptions, initializer authkit.Initializer, buildInfo models.AppBuildInfo, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(opts, initializer, log),
		AppInfoService: NewAppInfoService(buildInfo, log),
	}
}
