package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	logger.Debug().Str("version", info.BuildVersion()).Msg("creating app info service")
	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
