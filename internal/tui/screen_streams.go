package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/models"
)

// streamsModel lists streams page by page.
type streamsModel struct {
	ctx   context.Context
	admin service.AdminService

	table   table.Model
	page    models.Page[models.Stream]
	request models.PageRequest

	loading    bool
	confirming *models.Stream
	status     string
	errMsg     string
}

func newStreamsModel(ctx context.Context, admin service.AdminService) *streamsModel {
	return &streamsModel{
		ctx:   ctx,
		admin: admin,
		table: newListTable([]table.Column{
			{Title: "ID", Width: 10},
			{Title: "Title", Width: 28},
			{Title: "Streamer", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Viewers", Width: 8},
		}),
		request: models.PageRequest{Page: 1, Limit: service.DefaultPageLimit},
		loading: true,
	}
}

func (m *streamsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *streamsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case streamsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		m.request.Page = msg.page.Page
		m.table.SetRows(streamRows(msg.page.Results))
		return m, nil

	case streamDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Stream deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *streamsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirming.ID
			m.confirming = nil
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no):
			m.confirming = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		if s, ok := m.selected(); ok {
			return m, navigate(router.StreamViewLocation(s.ID))
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if s, ok := m.selected(); ok {
			m.confirming = &s
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.nextPage):
		if !m.page.HasNext() || m.loading {
			return m, nil
		}
		m.request.Page++
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.prevPage):
		if !m.page.HasPrev() || m.loading {
			return m, nil
		}
		m.request.Page--
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.users), key.Matches(msg, keys.esc):
		return m, navigate(router.UsersPath)
	case key.Matches(msg, keys.logout):
		return m, navigate(router.LogoutPath)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *streamsModel) View() string {
	if m.confirming != nil {
		return renderPage("STREAMS", confirmModel{kind: "stream", subject: m.confirming.Title}.View(), "")
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.page.Results) == 0:
		b.WriteString("Loading streams...\n")
	case len(m.page.Results) == 0:
		b.WriteString("No streams\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(pageLabel(m.page.Page, m.page.TotalPages, m.page.TotalResults))
		b.WriteString("\n")
	}

	b.WriteString(feedback(m.status, m.errMsg))

	return renderPage("STREAMS", strings.TrimRight(b.String(), "\n"),
		"enter: view │ d: delete │ [/]: page │ r: refresh │ u: users │ L: sign out │ v: about")
}

func (m *streamsModel) selected() (models.Stream, bool) {
	i, ok := selectedIndex(m.table, len(m.page.Results))
	if !ok {
		return models.Stream{}, false
	}
	return m.page.Results[i], true
}

func (m *streamsModel) cmdLoad() tea.Cmd {
	ctx, admin, req := m.ctx, m.admin, m.request
	return func() tea.Msg {
		page, err := admin.ListStreams(ctx, req)
		return streamsLoadedMsg{page: page, err: err}
	}
}

func (m *streamsModel) cmdDelete(id string) tea.Cmd {
	ctx, admin := m.ctx, m.admin
	return func() tea.Msg {
		return streamDeletedMsg{id: id, err: admin.DeleteStream(ctx, id)}
	}
}

func streamRows(streams []models.Stream) []table.Row {
	rows := make([]table.Row, 0, len(streams))
	for _, s := range streams {
		rows = append(rows, table.Row{
			fitText(s.ID, 10),
			fitText(s.Title, 28),
			fitText(s.StreamerID, 10),
			valueOrDash(s.Status),
			strconv.Itoa(s.Viewers),
		})
	}
	return rows
}
