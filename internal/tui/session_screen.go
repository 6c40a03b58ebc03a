// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-safe-auth/internal/service"
	"github.com/MKhiriev/go-safe-auth/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const noSafesPlaceholder = "No Available Safes"

var statusClearDelay = 3 * time.Second

const (
	buttonLogin = iota
	buttonLogout
	buttonCount
)

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

// SessionModel is the single screen of the client: login and logout buttons,
// the signed-in EOA and the Safes it owns.
//
// Init starts the auth client initialization once. Both buttons stay enabled
// at all times; whether an action does anything is up to the session service.
type SessionModel struct {
	ctx context.Context
	svc service.ClientSessionService

	spinner spinner.Model
	focus   int
	pending int
	info    *models.SessionInfo
	status  string
	errMsg  string
	initErr string

	// busyStatus is the status line of the operation that made pending
	// non-zero; it comes back when an overlapping request finishes first.
	busyStatus string
}

// NewSessionModel creates a [SessionModel] bound to svc.
func NewSessionModel(ctx context.Context, svc service.ClientSessionService) *SessionModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SessionModel{
		ctx:     ctx,
		svc:     svc,
		spinner: s,
	}
}

// Init implements [tea.Model].
func (m *SessionModel) Init() tea.Cmd {
	m.begin("Initializing authentication client...")
	return tea.Batch(m.spinner.Tick, m.cmdInitialize())
}

// Update implements [tea.Model]. Handled messages:
//   - [initDoneMsg], [loginDoneMsg], [logoutDoneMsg]: results of the async
//     commands; the displayed session is re-read from the service.
//   - left/right/tab: move focus between the buttons.
//   - enter: press the focused button; i and o press login and logout directly.
//   - c: copy the EOA to the clipboard.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		m.done()
		if msg.err != nil {
			m.initErr = "Authentication unavailable: " + humanizeError(msg.err)
		}
		return m, nil

	case loginDoneMsg:
		m.done()
		m.syncSession()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case logoutDoneMsg:
		m.done()
		m.syncSession()
		switch {
		case errors.Is(msg.err, service.ErrRemoteSignOut):
			m.errMsg = "Signed out locally, provider logout failed: " + humanizeError(msg.err)
		case msg.err != nil:
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "EOA copied to clipboard"
		return m, clearStatusAfter(statusClearDelay)

	case clearStatusMsg:
		if m.pending == 0 {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
		m.focus = (m.focus - 1 + buttonCount) % buttonCount
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		m.focus = (m.focus + 1) % buttonCount
	case key.Matches(msg, keys.enter):
		if m.focus == buttonLogin {
			return m, m.startLogin()
		}
		return m, m.startLogout()
	case key.Matches(msg, keys.login):
		m.focus = buttonLogin
		return m, m.startLogin()
	case key.Matches(msg, keys.logout):
		m.focus = buttonLogout
		return m, m.startLogout()
	case key.Matches(msg, keys.copy):
		if m.info == nil || m.info.EOA == "" {
			m.status = "Nothing to copy"
			return m, clearStatusAfter(statusClearDelay)
		}
		return m, cmdCopy(m.info.EOA)
	}
	return m, nil
}

// View implements [tea.Model].
func (m *SessionModel) View() string {
	var b strings.Builder

	b.WriteString(renderButtons(m.focus))
	b.WriteString("\n\n")
	b.WriteString(renderSession(m.info))

	if m.status != "" {
		b.WriteString("\n\n")
		if m.pending > 0 {
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
		}
		b.WriteString(m.status)
	}
	if m.initErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.initErr))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorOverlayModel{message: m.errMsg}.View())
	}

	return renderPage("SAFE AUTH", b.String(), "←/→: select │ enter: press │ i: login │ o: logout │ c: copy EOA │ v: version │ q: quit")
}

// renderSession renders the account part of the screen. It depends on info
// only: the EOA heading with the address (blank when signed out), then the
// Safes heading with one line per Safe in order, or the placeholder.
func renderSession(info *models.SessionInfo) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("EOA"))
	b.WriteString("\n")
	if info != nil {
		b.WriteString(info.EOA)
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Available safes"))
	b.WriteString("\n")
	if info == nil || !info.HasSafes() {
		b.WriteString(noSafesPlaceholder)
		return b.String()
	}
	b.WriteString(strings.Join(info.Safes, "\n"))

	return b.String()
}

func renderButtons(focus int) string {
	labels := [buttonCount]string{buttonLogin: "login", buttonLogout: "logout"}

	rendered := make([]string, 0, buttonCount)
	for i, label := range labels {
		style := buttonStyle
		if i == focus {
			style = focusedStyle
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *SessionModel) startLogin() tea.Cmd {
	m.errMsg = ""
	m.begin("Signing in, complete the login in your browser...")
	return tea.Batch(m.spinner.Tick, m.cmdLogin())
}

func (m *SessionModel) startLogout() tea.Cmd {
	m.errMsg = ""
	m.begin("Signing out...")
	return tea.Batch(m.spinner.Tick, m.cmdLogout())
}

func (m *SessionModel) begin(status string) {
	if m.pending == 0 {
		m.busyStatus = status
	}
	m.pending++
	m.status = status
}

// done settles one finished operation. The status line is cleared only when
// nothing else is running.
func (m *SessionModel) done() {
	if m.pending > 0 {
		m.pending--
	}
	if m.pending == 0 {
		m.status = ""
		m.busyStatus = ""
		return
	}
	m.status = m.busyStatus
}

func (m *SessionModel) syncSession() {
	info, ok := m.svc.Session()
	if !ok {
		m.info = nil
		return
	}
	m.info = &info
}

func (m *SessionModel) cmdInitialize() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return initDoneMsg{err: svc.Initialize(ctx)}
	}
}

func (m *SessionModel) cmdLogin() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		info, err := svc.Login(ctx)
		return loginDoneMsg{info: info, err: err}
	}
}

func (m *SessionModel) cmdLogout() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return logoutDoneMsg{err: svc.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
