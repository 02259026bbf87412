package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/stream-console/internal/adapter"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/models"
)

type adminService struct {
	api adapter.APIClient

	logger *logger.Logger
}

func NewAdminService(api adapter.APIClient, log *logger.Logger) AdminService {
	return &adminService{api: api, logger: log.WithComponent("admin_service")}
}

func (a *adminService) ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error) {
	res, err := a.api.ListUsers(ctx, clampPage(page))
	if err != nil {
		return models.Page[models.User]{}, mapAdapterError(err)
	}
	return res, nil
}

func (a *adminService) GetUser(ctx context.Context, id string) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *adminService) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	if err := validateUserInput(in); err != nil {
		return models.User{}, err
	}

	user, err := a.api.CreateUser(ctx, in)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (a *adminService) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}
	if err := validateUserPatch(patch); err != nil {
		return models.User{}, err
	}

	user, err := a.api.UpdateUser(ctx, id, patch)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

func (a *adminService) DeleteUser(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := a.api.DeleteUser(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (a *adminService) ListStreams(ctx context.Context, page models.PageRequest) (models.Page[models.Stream], error) {
	res, err := a.api.ListStreams(ctx, clampPage(page))
	if err != nil {
		return models.Page[models.Stream]{}, mapAdapterError(err)
	}
	return res, nil
}

func (a *adminService) GetStream(ctx context.Context, id string) (models.Stream, error) {
	if err := validateID(id); err != nil {
		return models.Stream{}, err
	}

	stream, err := a.api.GetStream(ctx, id)
	if err != nil {
		return models.Stream{}, mapAdapterError(err)
	}
	return stream, nil
}

func (a *adminService) CreateStream(ctx context.Context, in models.StreamInput) (models.Stream, error) {
	if err := validateStreamInput(in); err != nil {
		return models.Stream{}, err
	}

	stream, err := a.api.CreateStream(ctx, in)
	if err != nil {
		return models.Stream{}, mapAdapterError(err)
	}

	a.logger.Info().Str("stream_id", stream.ID).Msg("stream created")
	return stream, nil
}

func (a *adminService) UpdateStream(ctx context.Context, id string, patch models.StreamPatch) (models.Stream, error) {
	if err := validateID(id); err != nil {
		return models.Stream{}, err
	}
	if err := validateStreamPatch(patch); err != nil {
		return models.Stream{}, err
	}

	stream, err := a.api.UpdateStream(ctx, id, patch)
	if err != nil {
		return models.Stream{}, mapAdapterError(err)
	}

	a.logger.Info().Str("stream_id", id).Msg("stream updated")
	return stream, nil
}

func (a *adminService) DeleteStream(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := a.api.DeleteStream(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	a.logger.Info().Str("stream_id", id).Msg("stream deleted")
	return nil
}

// Overview counts live streams on the first MaxPageLimit streams only.
func (a *adminService) Overview(ctx context.Context) (models.Overview, error) {
	var (
		users   models.Page[models.User]
		streams models.Page[models.Stream]
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = a.api.ListUsers(gctx, models.PageRequest{Page: 1, Limit: 1})
		if err != nil {
			return fmt.Errorf("overview users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		streams, err = a.api.ListStreams(gctx, models.PageRequest{Page: 1, Limit: MaxPageLimit})
		if err != nil {
			return fmt.Errorf("overview streams: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Overview{}, mapAdapterError(err)
	}

	overview := models.Overview{
		TotalUsers:   users.TotalResults,
		TotalStreams: streams.TotalResults,
	}
	for _, s := range streams.Results {
		if s.Status == models.StreamLive {
			overview.LiveStreams++
		}
	}

	return overview, nil
}
