// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea front-end of the client.
//
// The whole interface is one page, [SessionModel]: two buttons and the
// account display. [RootModel] wraps it with the global hotkeys (ctrl+c,
// the version window on v).
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/service"
	"github.com/MKhiriev/go-safe-auth/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil {
		return nil, errors.New("tui: session service is required")
	}
	return &TUI{services: services, logger: log.WithComponent("tui")}, nil
}

// Run shows the session screen until the user quits. It returns
// [ErrUserQuit] when the program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(NewSessionModel(ctx, t.services.SessionService), t.buildInfo(ctx))
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Info().Msg("ui closed")
	return nil
}

func (t *TUI) buildInfo(ctx context.Context) models.AppBuildInfo {
	if t.services.AppInfoService == nil {
		return models.NewAppBuildInfo("", "", "")
	}
	return t.services.AppInfoService.GetAppInfo(ctx)
}
