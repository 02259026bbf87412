package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/stream-console/models"
)

// Endpoint paths of the remote service.
const (
	loginPath   = "/api/v1/auth/login"
	logoutPath  = "/api/v1/auth/logout"
	mePath      = "/api/v1/auth/me"
	usersPath   = "/api/v1/users"
	userPath    = "/api/v1/users/{id}"
	streamsPath = "/api/v1/stream-info"
	streamPath  = "/api/v1/stream-info/{id}"
)

// Paging defaults applied when a request leaves page or limit unset.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Login implements [APIClient]. It POSTs creds to /api/v1/auth/login and
// returns the envelope data: operator profile and token pair.
func (h *httpAPIClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	return decodeData[models.LoginResult](resp)
}

// Logout implements [APIClient]. It POSTs the refresh token to
// /api/v1/auth/logout.
func (h *httpAPIClient) Logout(ctx context.Context, refreshToken string) error {
	resp, err := h.request(ctx).
		SetBody(models.LogoutRequest{RefreshToken: refreshToken}).
		Post(logoutPath)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser implements [APIClient]. It GETs /api/v1/auth/me.
func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	resp, err := h.request(ctx).Get(mePath)
	if err != nil {
		return nil, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeData[models.UserProfile](resp)
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpAPIClient) pagedRequest(ctx context.Context, page models.PageRequest) *resty.Request {
	if page.Page < 1 {
		page.Page = DefaultPage
	}
	if page.Limit < 1 {
		page.Limit = DefaultLimit
	}

	return h.request(ctx).SetQueryParams(map[string]string{
		"page":  strconv.Itoa(page.Page),
		"limit": strconv.Itoa(page.Limit),
	})
}

func decodeData[T any](resp *resty.Response) (T, error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return env.Data, nil
}
