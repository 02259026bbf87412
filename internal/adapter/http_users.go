package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stream-console/models"
)

// ListUsers implements [APIClient]. GET /api/v1/users?page=&limit=.
func (h *httpAPIClient) ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error) {
	resp, err := h.pagedRequest(ctx, page).Get(usersPath)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.User]{}, err
	}

	return decodeData[models.Page[models.User]](resp)
}

// GetUser implements [APIClient]. GET /api/v1/users/{id}.
func (h *httpAPIClient) GetUser(ctx context.Context, id string) (models.User, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeData[models.User](resp)
}

// CreateUser implements [APIClient]. POST /api/v1/users.
func (h *httpAPIClient) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeData[models.User](resp)
}

// UpdateUser implements [APIClient]. PATCH /api/v1/users/{id}.
func (h *httpAPIClient) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(patch).
		Patch(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeData[models.User](resp)
}

// DeleteUser implements [APIClient]. DELETE /api/v1/users/{id}.
func (h *httpAPIClient) DeleteUser(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(userPath)
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
