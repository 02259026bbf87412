package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stream-console/internal/mock"
	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/models"
)

func usersPage(page, totalPages int, users ...models.User) models.Page[models.User] {
	return models.Page[models.User]{
		Results:      users,
		Page:         page,
		Limit:        service.DefaultPageLimit,
		TotalPages:   totalPages,
		TotalResults: len(users) * totalPages,
	}
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel(context.Background(), nil, "")
	m.inputs[0].SetValue("ada@example.com")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Email and password are required", m.errMsg)
}

func TestLoginModel_FailureClearsPassword(t *testing.T) {
	m := NewLoginModel(context.Background(), nil, "")
	m.inputs[0].SetValue("ada@example.com")
	m.inputs[1].SetValue("wrong")
	m.submitting = true

	_, cmd := m.Update(loginDoneMsg{err: service.ErrWrongCredentials})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[1].Value())
	assert.Equal(t, "ada@example.com", m.inputs[0].Value())
	assert.Equal(t, "Incorrect email or password", m.errMsg)
}

func TestLoginModel_ReturnPath(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"", router.UsersPath},
		{router.LoginPath, router.UsersPath},
		{router.LogoutPath, router.UsersPath},
		{router.StreamsPath, router.StreamsPath},
		{"/users/7/edit", "/users/7/edit"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			m := NewLoginModel(context.Background(), nil, tt.from)
			assert.Equal(t, tt.want, m.returnPath())
		})
	}
}

func TestLoginModel_FocusCycles(t *testing.T) {
	m := NewLoginModel(context.Background(), nil, "")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestLogoutModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().Logout(gomock.Any()).Return(nil)

	m := newLogoutModel(context.Background(), session)
	msg := m.Init()()
	assert.Equal(t, logoutDoneMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Path: router.LoginPath}, cmd())
	assert.Contains(t, m.View(), "Signed out")
}

func TestUsersModel_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminService(ctrl)

	m := newUsersModel(context.Background(), admin)
	m.Update(usersLoadedMsg{page: usersPage(1, 2, models.User{ID: "u1", Email: "a@x.io"})})
	assert.False(t, m.loading)

	admin.EXPECT().ListUsers(gomock.Any(), models.PageRequest{Page: 2, Limit: service.DefaultPageLimit}).
		Return(usersPage(2, 2, models.User{ID: "u2", Email: "b@x.io"}), nil)

	_, cmd := m.Update(runeKey("]"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 2, m.request.Page)
	assert.Contains(t, m.View(), "b@x.io")
	assert.Contains(t, m.View(), "page 2/2")

	_, cmd = m.Update(runeKey("]"))
	assert.Nil(t, cmd)
}

func TestUsersModel_DeleteAsksFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminService(ctrl)

	m := newUsersModel(context.Background(), admin)
	m.Update(usersLoadedMsg{page: usersPage(1, 1, models.User{ID: "u1", Email: "a@x.io"})})

	m.Update(runeKey("d"))
	require.NotNil(t, m.confirming)
	assert.Contains(t, m.View(), `Delete user "a@x.io"?`)

	m.Update(runeKey("n"))
	assert.Nil(t, m.confirming)

	admin.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil)

	m.Update(runeKey("d"))
	_, cmd := m.Update(runeKey("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, userDeletedMsg{id: "u1"}, cmd())
}

func TestUsersModel_Navigation(t *testing.T) {
	m := newUsersModel(context.Background(), nil)
	m.Update(usersLoadedMsg{page: usersPage(1, 1, models.User{ID: "u1"})})

	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{runeKey("n"), router.UserCreatePath},
		{runeKey("e"), "/users/u1/edit"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "/users/u1/edit"},
		{runeKey("t"), router.StreamsPath},
		{runeKey("L"), router.LogoutPath},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, NavigateTo{Path: tt.want}, cmd())
		})
	}
}

func TestUsersModel_Overview(t *testing.T) {
	m := newUsersModel(context.Background(), nil)

	m.Update(overviewLoadedMsg{overview: models.Overview{TotalUsers: 12, TotalStreams: 4, LiveStreams: 1}})

	assert.Contains(t, m.View(), "12 users · 4 streams · 1 live")
}

func TestUserFormModel_EditSendsChangedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminService(ctrl)

	m := newUserFormModel(context.Background(), admin, "u1")
	m.Update(userLoadedMsg{user: models.User{ID: "u1", Name: "Ada", Email: "ada@x.io", Role: models.RoleUser}})
	m.form.set(userFieldRole, models.RoleAdmin)

	role := models.RoleAdmin
	admin.EXPECT().UpdateUser(gomock.Any(), "u1", models.UserPatch{Role: &role}).
		Return(models.User{ID: "u1", Role: role}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved := cmd()

	_, cmd = m.Update(saved)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Path: router.UsersPath}, cmd())
}

func TestUserFormModel_CreateShowsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminService(ctrl)

	m := newUserFormModel(context.Background(), admin, "")
	m.form.set(userFieldName, "Ada")
	m.form.set(userFieldEmail, "not-an-email")
	m.form.set(userFieldPassword, "pw")

	admin.EXPECT().CreateUser(gomock.Any(), models.UserInput{
		Name: "Ada", Email: "not-an-email", Password: "pw", Role: models.RoleUser,
	}).Return(models.User{}, service.ErrValidationInvalidEmail)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, service.ErrValidationInvalidEmail.Error(), m.errMsg)
}

func TestStreamViewModel_CopyPlaybackURL(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newStreamViewModel(context.Background(), nil, "s1")
	m.Update(streamLoadedMsg{stream: models.Stream{ID: "s1", PlaybackURL: "https://cdn.test/s1.m3u8"}})

	_, cmd := m.Update(runeKey("c"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "https://cdn.test/s1.m3u8", copied)
	assert.Equal(t, "Playback URL copied", m.status)
}

func TestStreamViewModel_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	m := newStreamViewModel(context.Background(), nil, "s1")
	m.Update(streamLoadedMsg{stream: models.Stream{ID: "s1", PlaybackURL: "https://cdn.test/s1.m3u8"}})

	_, cmd := m.Update(runeKey("c"))
	m.Update(cmd())

	assert.Equal(t, "copy to clipboard: no clipboard", m.errMsg)
}

func TestStreamViewModel_AdvanceStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminService(ctrl)

	m := newStreamViewModel(context.Background(), admin, "s1")
	m.Update(streamLoadedMsg{stream: models.Stream{ID: "s1", Status: models.StreamScheduled}})

	live := models.StreamLive
	admin.EXPECT().UpdateStream(gomock.Any(), "s1", models.StreamPatch{Status: &live}).
		Return(models.Stream{ID: "s1", Status: live}, nil)

	_, cmd := m.Update(runeKey("s"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, models.StreamLive, m.stream.Status)
	assert.Contains(t, m.View(), "Status changed to live")
}

func TestNextStreamStatus(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{models.StreamScheduled, models.StreamLive},
		{models.StreamLive, models.StreamEnded},
		{models.StreamEnded, models.StreamScheduled},
		{"", models.StreamScheduled},
		{"paused", models.StreamScheduled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextStreamStatus(tt.current), tt.current)
	}
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("list: %w", service.ErrSessionExpired), "Session expired, please log in again"},
		{service.ErrServerUnavailable, "Server error, try again later"},
		{errors.New("Get \"http://x\": dial tcp 127.0.0.1:3000: connect: connection refused"), "No network or server unavailable"},
		{errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}
