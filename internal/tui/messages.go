package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/models"
)

// NavigateTo asks the root model to resolve Path through the router and
// switch to the resulting screen.
type NavigateTo struct {
	Path string
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}

// asyncResult marks messages produced by commands that talked to the API.
// The root model re-resolves the current route after each of them.
type asyncResult interface {
	asyncResult()
}

type loginDoneMsg struct {
	profile models.UserProfile
	err     error
}

type logoutDoneMsg struct {
	err error
}

type overviewLoadedMsg struct {
	overview models.Overview
	err      error
}

type usersLoadedMsg struct {
	page models.Page[models.User]
	err  error
}

type userLoadedMsg struct {
	user models.User
	err  error
}

type userSavedMsg struct {
	user models.User
	err  error
}

type userDeletedMsg struct {
	id  string
	err error
}

type streamsLoadedMsg struct {
	page models.Page[models.Stream]
	err  error
}

type streamLoadedMsg struct {
	stream models.Stream
	err    error
}

type streamSavedMsg struct {
	stream models.Stream
	err    error
}

type streamDeletedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}

func (loginDoneMsg) asyncResult()      {}
func (logoutDoneMsg) asyncResult()     {}
func (overviewLoadedMsg) asyncResult() {}
func (usersLoadedMsg) asyncResult()    {}
func (userLoadedMsg) asyncResult()     {}
func (userSavedMsg) asyncResult()      {}
func (userDeletedMsg) asyncResult()    {}
func (streamsLoadedMsg) asyncResult()  {}
func (streamLoadedMsg) asyncResult()   {}
func (streamSavedMsg) asyncResult()    {}
func (streamDeletedMsg) asyncResult()  {}

type copiedMsg struct {
	err error
}
