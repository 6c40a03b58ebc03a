package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/mock"
	"github.com/MKhiriev/go-safe-auth/internal/service"
	"github.com/MKhiriev/go-safe-auth/internal/tui"
	"github.com/MKhiriev/go-safe-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	err error
	ran bool
}

func (s *stubUI) Run(ctx context.Context) error {
	s.ran = true
	if ctx == nil {
		return errors.New("nil context")
	}
	return s.err
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, ui UI) *App {
	t.Helper()
	session := mock.NewMockClientSessionService(ctrl)
	session.EXPECT().Session().Return(models.SessionInfo{}, false).AnyTimes()

	app, err := NewApp(&service.ClientServices{SessionService: session}, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_UserQuitIsNormalExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := &stubUI{err: tui.ErrUserQuit}

	require.NoError(t, newTestApp(t, ctrl, ui).Run())
	assert.True(t, ui.ran)
}

func TestApp_Run_PropagatesUIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uiErr := errors.New("terminal gone")

	err := newTestApp(t, ctrl, &stubUI{err: uiErr}).Run()
	assert.ErrorIs(t, err, uiErr)
}
