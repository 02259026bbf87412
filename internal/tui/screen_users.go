// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/models"
)

// usersModel lists managed accounts page by page with the collection
// overview on top.
type usersModel struct {
	ctx   context.Context
	admin service.AdminService

	table    table.Model
	page     models.Page[models.User]
	request  models.PageRequest
	overview *models.Overview

	loading    bool
	confirming *models.User
	status     string
	errMsg     string
}

func newUsersModel(ctx context.Context, admin service.AdminService) *usersModel {
	return &usersModel{
		ctx:   ctx,
		admin: admin,
		table: newListTable([]table.Column{
			{Title: "ID", Width: 10},
			{Title: "Name", Width: 20},
			{Title: "Email", Width: 28},
			{Title: "Role", Width: 8},
		}),
		request: models.PageRequest{Page: 1, Limit: service.DefaultPageLimit},
		loading: true,
	}
}

func (m *usersModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.cmdOverview())
}

func (m *usersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		m.request.Page = msg.page.Page
		m.table.SetRows(userRows(msg.page.Results))
		return m, nil

	case overviewLoadedMsg:
		if msg.err == nil {
			m.overview = &msg.overview
		}
		return m, nil

	case userDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "User deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.cmdOverview(), cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *usersModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
	case key.Matches(msg, keys.newItem):
		return m, navigate(router.UserCreatePath)
	case key.Matches(msg, keys.edit):
		if u, ok := m.selected(); ok {
			return m, navigate(router.UserEditLocation(u.ID))
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if u, ok := m.selected(); ok {
			m.confirming = &u
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.cmdOverview())
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
	case key.Matches(msg, keys.streams):
		return m, navigate(router.StreamsPath)
	case key.Matches(msg, keys.logout):
		return m, navigate(router.LogoutPath)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *usersModel) View() string {
	if m.confirming != nil {
		return renderPage("USERS", confirmModel{kind: "user", subject: m.confirming.Email}.View(), "")
	}

	var b strings.Builder
	if m.overview != nil {
		fmt.Fprintf(&b, "%d users · %d streams · %d live\n\n",
			m.overview.TotalUsers, m.overview.TotalStreams, m.overview.LiveStreams)
	}

	switch {
	case m.loading && len(m.page.Results) == 0:
		b.WriteString("Loading users...\n")
	case len(m.page.Results) == 0:
		b.WriteString("No users\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(pageLabel(m.page.Page, m.page.TotalPages, m.page.TotalResults))
		b.WriteString("\n")
	}

	b.WriteString(feedback(m.status, m.errMsg))

	return renderPage("USERS", strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ [/]: page │ r: refresh │ t: streams │ L: sign out │ v: about")
}

func (m *usersModel) selected() (models.User, bool) {
	i, ok := selectedIndex(m.table, len(m.page.Results))
	if !ok {
		return models.User{}, false
	}
	return m.page.Results[i], true
}

func (m *usersModel) cmdLoad() tea.Cmd {
	ctx, admin, req := m.ctx, m.admin, m.request
	return func() tea.Msg {
		page, err := admin.ListUsers(ctx, req)
		return usersLoadedMsg{page: page, err: err}
	}
}

func (m *usersModel) cmdOverview() tea.Cmd {
	ctx, admin := m.ctx, m.admin
	return func() tea.Msg {
		overview, err := admin.Overview(ctx)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

func (m *usersModel) cmdDelete(id string) tea.Cmd {
	ctx, admin := m.ctx, m.admin
	return func() tea.Msg {
		return userDeletedMsg{id: id, err: admin.DeleteUser(ctx, id)}
	}
}

func userRows(users []models.User) []table.Row {
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{
			fitText(u.ID, 10),
			fitText(valueOrDash(u.Name), 20),
			fitText(u.Email, 28),
			valueOrDash(u.Role),
		})
	}
	return rows
}
