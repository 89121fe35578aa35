package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestAppInfoService_GetAppInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetAppInfo(context.Background())
	assert.Equal(t, "1.2.0", got.BuildVersion())
	assert.Equal(t, "2026-10-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}

func TestAppInfoService_DevBuild(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A (N/A, N/A)", svc.GetAppInfo(context.Background()).String())
}
