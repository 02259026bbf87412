package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
	"github.com/MKhiriev/stream-console/models"
)

// screenFactory builds the model of a screen for a resolved route.
type screenFactory func(res router.Resolution) tea.Model

// textEntry is implemented by screens that consume printable keys, so that
// global single-letter hotkeys stay out of their way.
type textEntry interface {
	acceptsText() bool
}

// RootModel is a TUI router:
// 1) keeps the active screen and the route it was resolved for
// 2) handles global Ctrl+C quit and the about window
// 3) resolves NavigateTo messages through the route guards
// 4) re-resolves the current route after every API result
// 5) delegates all other messages to the active screen
type RootModel struct {
	ctx      context.Context
	router   *router.Router
	session  service.SessionService
	screens  map[string]screenFactory
	current  tea.Model
	location router.Resolution

	operator  string
	buildInfo models.AppBuildInfo
	apiURL    string
	errMsg    string

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers screens and remembers the path to open on Init.
func NewRootModel(ctx context.Context, r *router.Router, session service.SessionService, screens map[string]screenFactory, startPath string, buildInfo models.AppBuildInfo, apiURL string) RootModel {
	return RootModel{
		ctx:       ctx,
		router:    r,
		session:   session,
		screens:   screens,
		location:  router.Resolution{Path: startPath},
		buildInfo: buildInfo,
		apiURL:    apiURL,
	}
}

func (r RootModel) Init() tea.Cmd {
	return navigate(r.location.Path)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case r.errMsg != "":
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
				r.errMsg = ""
			}
			return r, nil
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.about) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.about) && !r.typing():
			r.showBuildInfo = true
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav.Path)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated

	if _, ok := msg.(asyncResult); ok && r.location.Screen != router.ScreenLogin {
		return r.reresolve(cmd)
	}

	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.apiURL))
	}
	if r.errMsg != "" {
		return appStyle.Render(errorOverlayModel{message: r.errMsg}.View())
	}
	if r.current == nil {
		return appStyle.Render(renderPage("STREAM CONSOLE", "", ""))
	}

	return appStyle.Render(r.header() + "\n\n" + r.current.View())
}

func (r RootModel) navigate(path string) (RootModel, tea.Cmd) {
	res, err := r.router.Resolve(r.ctx, path)
	if err != nil {
		r.errMsg = err.Error()
		return r, nil
	}

	return r.show(res)
}

// reresolve evaluates the guards for the current location again. A session
// cleared while the command ran turns into a redirect here.
func (r RootModel) reresolve(cmd tea.Cmd) (RootModel, tea.Cmd) {
	res, err := r.router.Resolve(r.ctx, r.location.Path)
	if err != nil {
		r.errMsg = err.Error()
		return r, cmd
	}
	if res.Path == r.location.Path && res.Screen == r.location.Screen {
		return r, cmd
	}

	// The pending command belongs to the screen being left.
	return r.show(res)
}

func (r RootModel) show(res router.Resolution) (RootModel, tea.Cmd) {
	factory, ok := r.screens[res.Screen]
	if !ok {
		r.errMsg = "no screen registered for " + res.Path
		return r, nil
	}

	r.errMsg = ""
	r.showBuildInfo = false
	r.location = res
	r.current = factory(res)
	r.operator = ""
	if r.session != nil {
		r.operator = r.session.DisplayName(r.ctx)
	}

	return r, r.current.Init()
}

func (r RootModel) header() string {
	line := "stream-console · " + r.location.Path
	if r.operator != "" {
		line += " · " + r.operator
	}
	return headerStyle.Render(line)
}

func (r RootModel) typing() bool {
	t, ok := r.current.(textEntry)
	return ok && t.acceptsText()
}

// Location returns the route the active screen was resolved for.
func (r RootModel) Location() router.Resolution {
	return r.location
}
