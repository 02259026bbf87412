package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
)

// logoutModel ends the session as soon as it is shown and hands over to the
// login screen.
type logoutModel struct {
	ctx     context.Context
	session service.SessionService
	done    bool
}

func newLogoutModel(ctx context.Context, session service.SessionService) *logoutModel {
	return &logoutModel{ctx: ctx, session: session}
}

func (m *logoutModel) Init() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func (m *logoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(logoutDoneMsg); ok {
		m.done = true
		return m, navigate(router.LoginPath)
	}
	return m, nil
}

func (m *logoutModel) View() string {
	if m.done {
		return renderPage("SIGN OUT", "Signed out", "")
	}
	return renderPage("SIGN OUT", "Signing out...", "")
}
