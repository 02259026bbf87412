package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stream-console/models"
)

// ListStreams implements [APIClient]. GET /api/v1/stream-info?page=&limit=.
func (h *httpAPIClient) ListStreams(ctx context.Context, page models.PageRequest) (models.Page[models.Stream], error) {
	resp, err := h.pagedRequest(ctx, page).Get(streamsPath)
	if err != nil {
		return models.Page[models.Stream]{}, fmt.Errorf("list streams request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.Stream]{}, err
	}

	return decodeData[models.Page[models.Stream]](resp)
}

// GetStream implements [APIClient]. GET /api/v1/stream-info/{id}.
func (h *httpAPIClient) GetStream(ctx context.Context, id string) (models.Stream, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get(streamPath)
	if err != nil {
		return models.Stream{}, fmt.Errorf("get stream request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stream{}, err
	}

	return decodeData[models.Stream](resp)
}

// CreateStream implements [APIClient]. POST /api/v1/stream-info.
func (h *httpAPIClient) CreateStream(ctx context.Context, in models.StreamInput) (models.Stream, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Post(streamsPath)
	if err != nil {
		return models.Stream{}, fmt.Errorf("create stream request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stream{}, err
	}

	return decodeData[models.Stream](resp)
}

// UpdateStream implements [APIClient]. PATCH /api/v1/stream-info/{id}.
func (h *httpAPIClient) UpdateStream(ctx context.Context, id string, patch models.StreamPatch) (models.Stream, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(patch).
		Patch(streamPath)
	if err != nil {
		return models.Stream{}, fmt.Errorf("update stream request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stream{}, err
	}

	return decodeData[models.Stream](resp)
}

// DeleteStream implements [APIClient]. DELETE /api/v1/stream-info/{id}.
func (h *httpAPIClient) DeleteStream(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(streamPath)
	if err != nil {
		return fmt.Errorf("delete stream request: %w", err)
	}

	return mapHTTPError(resp)
}
