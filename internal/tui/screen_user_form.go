package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/models"
)

const (
	userFieldName = iota
	userFieldEmail
	userFieldPassword
	userFieldRole
)

// userFormModel creates a user, or edits one when id is set. An edit only
// sends the fields that differ from the loaded record; a blank password
// keeps the current one.
type userFormModel struct {
	ctx   context.Context
	admin service.AdminService
	id    string

	form       form
	original   models.User
	loading    bool
	submitting bool
	errMsg     string
}

func newUserFormModel(ctx context.Context, admin service.AdminService, id string) *userFormModel {
	password := newField("Password", "password", 256)
	password.input.EchoMode = textinput.EchoPassword
	password.input.EchoCharacter = '*'
	if id != "" {
		password.input.Placeholder = "unchanged"
	}

	role := newField("Role", strings.Join(models.Roles(), " | "), 16)
	role.input.SetValue(models.RoleUser)

	return &userFormModel{
		ctx:   ctx,
		admin: admin,
		id:    id,
		form: newForm(
			newField("Name", "full name", 128),
			newField("Email", "email", 254),
			password,
			role,
		),
		loading: id != "",
	}
}

func (m *userFormModel) Init() tea.Cmd {
	if m.id == "" {
		return textinput.Blink
	}

	ctx, admin, id := m.ctx, m.admin, m.id
	return tea.Batch(textinput.Blink, func() tea.Msg {
		user, err := admin.GetUser(ctx, id)
		return userLoadedMsg{user: user, err: err}
	})
}

func (m *userFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.original = msg.user
		m.form.set(userFieldName, msg.user.Name)
		m.form.set(userFieldEmail, msg.user.Email)
		m.form.set(userFieldRole, msg.user.Role)
		return m, nil

	case userSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(router.UsersPath)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(router.UsersPath)
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting || m.loading {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave()
		}
	}

	return m, m.form.update(msg)
}

func (m *userFormModel) View() string {
	title := "NEW USER"
	if m.id != "" {
		title = "EDIT USER " + m.id
	}

	var b strings.Builder
	if m.loading {
		b.WriteString("Loading user...\n")
	} else {
		b.WriteString(m.form.view())
	}
	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case !m.loading:
		b.WriteString("\n[Save]\n")
	}
	b.WriteString(feedback("", m.errMsg))

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: back")
}

func (m *userFormModel) acceptsText() bool { return true }

func (m *userFormModel) cmdSave() tea.Cmd {
	ctx, admin, id := m.ctx, m.admin, m.id

	if id == "" {
		in := models.UserInput{
			Name:     m.form.value(userFieldName),
			Email:    m.form.value(userFieldEmail),
			Password: m.form.fields[userFieldPassword].input.Value(),
			Role:     m.form.value(userFieldRole),
		}
		return func() tea.Msg {
			user, err := admin.CreateUser(ctx, in)
			return userSavedMsg{user: user, err: err}
		}
	}

	patch := m.patch()
	return func() tea.Msg {
		user, err := admin.UpdateUser(ctx, id, patch)
		return userSavedMsg{user: user, err: err}
	}
}

func (m *userFormModel) patch() models.UserPatch {
	var patch models.UserPatch
	if v := m.form.value(userFieldName); v != m.original.Name {
		patch.Name = &v
	}
	if v := m.form.value(userFieldEmail); v != m.original.Email {
		patch.Email = &v
	}
	if v := m.form.fields[userFieldPassword].input.Value(); v != "" {
		patch.Password = &v
	}
	if v := m.form.value(userFieldRole); v != m.original.Role {
		patch.Role = &v
	}
	return patch
}
