package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/utils"
)

// Header names set by the outbound interceptor.
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

type httpAPIClient struct {
	client  *utils.HTTPClient
	session Session
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the HTTP implementation of [APIClient].
//
// The pipeline is configured once: base URL from cfg.BaseURL, timeout from
// cfg.RequestTimeout, JSON content negotiation, no retries. session is read
// by the outbound interceptor on every request and cleared by the inbound
// interceptor on 401. A nil session disables both.
func NewHTTPAPIClient(cfg config.ConsoleAPI, session Session, log *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	h := &httpAPIClient{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		session: session,
		ids:     utils.NewUUIDGenerator(),
		logger:  log.WithComponent("api_client"),
	}

	h.client.
		OnBeforeRequest(h.authorize).
		OnAfterResponse(h.inspect)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authorize is the outbound interceptor. The session is read at dispatch
// time, so a request built before a logout goes out without a token.
func (h *httpAPIClient) authorize(_ *resty.Client, r *resty.Request) error {
	r.SetHeader(HeaderRequestID, h.ids.Generate())

	if h.session == nil {
		return nil
	}

	data, ok := h.session.GetTokenData(r.Context())
	if ok && data.Authenticated() {
		r.SetHeader(HeaderAuthorization, "Bearer "+data.AccessToken())
	}

	return nil
}

// inspect is the inbound interceptor. It never fails the request: status
// mapping happens in mapHTTPError.
func (h *httpAPIClient) inspect(_ *resty.Client, resp *resty.Response) error {
	status := resp.StatusCode()

	switch {
	case status == http.StatusUnauthorized:
		h.logger.Warn().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
			Msg("unauthorized response, clearing session")
		if h.session != nil {
			h.session.ClearSession(context.WithoutCancel(resp.Request.Context()))
		}

	case status >= http.StatusInternalServerError:
		h.logger.Error().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
			Int("status", status).
			Str("body", string(resp.Body())).
			Msg("server error")
	}

	return nil
}
