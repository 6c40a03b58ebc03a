package tui

import "github.com/MKhiriev/go-safe-auth/models"

type initDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	info models.SessionInfo
	err  error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
