package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/models"
)

// streamViewModel shows a single stream. The playback URL can be copied and
// the status moved to the next lifecycle state.
type streamViewModel struct {
	ctx   context.Context
	admin service.AdminService
	id    string

	stream     models.Stream
	loading    bool
	confirming bool
	status     string
	errMsg     string
}

func newStreamViewModel(ctx context.Context, admin service.AdminService, id string) *streamViewModel {
	return &streamViewModel{ctx: ctx, admin: admin, id: id, loading: true}
}

func (m *streamViewModel) Init() tea.Cmd {
	ctx, admin, id := m.ctx, m.admin, m.id
	return func() tea.Msg {
		stream, err := admin.GetStream(ctx, id)
		return streamLoadedMsg{stream: stream, err: err}
	}
}

func (m *streamViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case streamLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.stream = msg.stream
		return m, nil

	case streamSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stream = msg.stream
		m.status = "Status changed to " + msg.stream.Status
		return m, cmdClearStatus()

	case streamDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(router.StreamsPath)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Playback URL copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *streamViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			return m, m.cmdDelete()
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	if m.loading {
		if key.Matches(msg, keys.esc) {
			return m, navigate(router.StreamsPath)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(router.StreamsPath)
	case key.Matches(msg, keys.copy):
		if m.stream.PlaybackURL == "" {
			m.errMsg = "Stream has no playback URL"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.stream.PlaybackURL)
	case key.Matches(msg, keys.status):
		if m.stream.ID == "" {
			return m, nil
		}
		return m, m.cmdAdvanceStatus()
	case key.Matches(msg, keys.delete):
		if m.stream.ID != "" {
			m.confirming = true
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.Init()
	}

	return m, nil
}

func (m *streamViewModel) View() string {
	if m.confirming {
		return renderPage("STREAM", confirmModel{kind: "stream", subject: m.stream.Title}.View(), "")
	}

	var b strings.Builder
	if m.loading {
		b.WriteString("Loading stream...\n")
	} else if m.stream.ID != "" {
		fmt.Fprintf(&b, "ID        │ %s\n", m.stream.ID)
		fmt.Fprintf(&b, "Title     │ %s\n", valueOrDash(m.stream.Title))
		fmt.Fprintf(&b, "Streamer  │ %s\n", valueOrDash(m.stream.StreamerID))
		fmt.Fprintf(&b, "Status    │ %s\n", renderStreamStatus(m.stream.Status))
		fmt.Fprintf(&b, "Viewers   │ %d\n", m.stream.Viewers)
		fmt.Fprintf(&b, "Playback  │ %s\n", valueOrDash(m.stream.PlaybackURL))
		fmt.Fprintf(&b, "Started   │ %s\n", formatTime(m.stream.StartedAt))
	}

	b.WriteString(feedback(m.status, m.errMsg))

	return renderPage("STREAM", strings.TrimRight(b.String(), "\n"),
		"c: copy URL │ s: next status │ d: delete │ r: refresh │ esc: back")
}

func (m *streamViewModel) cmdAdvanceStatus() tea.Cmd {
	ctx, admin, id := m.ctx, m.admin, m.id
	next := nextStreamStatus(m.stream.Status)
	return func() tea.Msg {
		stream, err := admin.UpdateStream(ctx, id, models.StreamPatch{Status: &next})
		return streamSavedMsg{stream: stream, err: err}
	}
}

func (m *streamViewModel) cmdDelete() tea.Cmd {
	ctx, admin, id := m.ctx, m.admin, m.id
	return func() tea.Msg {
		return streamDeletedMsg{id: id, err: admin.DeleteStream(ctx, id)}
	}
}

// nextStreamStatus cycles through the lifecycle; an unknown status starts over.
func nextStreamStatus(current string) string {
	statuses := models.StreamStatuses()
	i := slices.Index(statuses, current)
	return statuses[(i+1)%len(statuses)]
}

func renderStreamStatus(status string) string {
	if status == models.StreamLive {
		return liveStyle.Render(status)
	}
	return valueOrDash(status)
}
