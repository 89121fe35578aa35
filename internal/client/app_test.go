package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type fakeUI struct {
	passphrase string
	calls      int
	err        error
}

func (f *fakeUI) Run(_ context.Context, passphrase string) error {
	f.calls++
	f.passphrase = passphrase
	return f.err
}

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "", "")).AnyTimes()

	return &service.ClientServices{
		NoteService:    mock.NewMockNoteService(ctrl),
		AppInfoService: info,
	}
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(newTestServices(t), nil, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_RunPassesPassphrase(t *testing.T) {
	ui := &fakeUI{}
	a, err := NewApp(newTestServices(t), ui, config.ClientApp{NotesPassphrase: "pw"}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
	assert.Equal(t, "pw", ui.passphrase)
}

func TestApp_RunWrapsUIError(t *testing.T) {
	boom := errors.New("terminal gone")
	a, err := NewApp(newTestServices(t), &fakeUI{err: boom}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, a.Run(context.Background()), boom)
}
