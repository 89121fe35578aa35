package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ClientServices bundles the services the front-ends talk to.
type ClientServices struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewClientServices wires the production services on top of storages:
// PBKDF2 + AES-GCM sealing and UUIDv7 note ids.
func NewClientServices(storages *store.ClientStorages, info models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteService:    NewNoteService(storages.NoteRepository, crypto.NewDefaultSealer(), utils.NewUUIDGenerator(), logger),
		AppInfoService: NewAppInfoService(info, logger),
	}
}
