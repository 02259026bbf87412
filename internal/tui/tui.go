// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the console. A root model owns
// navigation: every screen change goes through the router, so the route
// guards decide what is shown.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/router"
	"github.com/MKhiriev/stream-console/internal/service"
)

// ErrUserQuit is returned by Run when the operator quits with Ctrl+C.
var ErrUserQuit = errors.New("user quit the console")

type TUI struct {
	services *service.Services
	router   *router.Router
	apiURL   string

	logger *logger.Logger
}

func New(services *service.Services, r *router.Router, apiURL string, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	if r == nil {
		return nil, errors.New("tui: router is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		services: services,
		router:   r,
		apiURL:   apiURL,
		logger:   log.WithComponent("tui"),
	}, nil
}

// Run shows the console starting at startPath and blocks until the
// operator quits.
func (t *TUI) Run(ctx context.Context, startPath string) error {
	if startPath == "" {
		startPath = router.RootPath
	}

	root := t.rootModel(ctx, startPath)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Info().Str("location", result.Location().Path).Msg("console closed")
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) rootModel(ctx context.Context, startPath string) RootModel {
	return NewRootModel(ctx, t.router, t.services.SessionService, screens(ctx, t.services),
		startPath, t.services.AppInfoService.BuildInfo(), t.apiURL)
}

// screens maps every screen name of the route table to its factory.
func screens(ctx context.Context, services *service.Services) map[string]screenFactory {
	session, admin := services.SessionService, services.AdminService

	return map[string]screenFactory{
		router.ScreenLogin: func(res router.Resolution) tea.Model {
			return NewLoginModel(ctx, session, res.From)
		},
		router.ScreenLogout: func(router.Resolution) tea.Model {
			return newLogoutModel(ctx, session)
		},
		router.ScreenUsers: func(router.Resolution) tea.Model {
			return newUsersModel(ctx, admin)
		},
		router.ScreenUserCreate: func(router.Resolution) tea.Model {
			return newUserFormModel(ctx, admin, "")
		},
		router.ScreenUserEdit: func(res router.Resolution) tea.Model {
			return newUserFormModel(ctx, admin, res.Param("id"))
		},
		router.ScreenStreams: func(router.Resolution) tea.Model {
			return newStreamsModel(ctx, admin)
		},
		router.ScreenStreamView: func(res router.Resolution) tea.Model {
			return newStreamViewModel(ctx, admin, res.Param("id"))
		},
	}
}
