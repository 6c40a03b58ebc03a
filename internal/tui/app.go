package tui

import (
	"github.com/MKhiriev/go-safe-auth/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel wraps the single page of the client. It owns the hotkeys that
// work everywhere (ctrl+c, the version window on v) and centres the page once
// the terminal size is known. Everything else goes to the page.
type RootModel struct {
	page      tea.Model
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool

	width, height int
}

func NewRootModel(page tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{page: page, buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	if r.page == nil {
		return nil
	}
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			r.showBuildInfo = false
			return r, nil
		}
		// the version window is modal
		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.page == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.page, cmd = r.page.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	var view string
	switch {
	case r.showBuildInfo:
		view = renderBuildInfoWindow(r.buildInfo)
	case r.page == nil:
		view = renderPage("SAFE AUTH", "", "")
	default:
		view = r.page.View()
	}

	if r.width == 0 || r.height == 0 {
		return view
	}
	return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, view)
}
