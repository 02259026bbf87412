// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stream-console/internal/app"
	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/models"
)

func testConfig() config.DevAPIConfig {
	return config.DevAPIConfig{
		Address:       "127.0.0.1:0",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "devapi-test",
		TokenDuration: time.Hour,
	}
}

func newTestServer(t *testing.T) (*Handler, *httptest.Server) {
	t.Helper()

	h := NewHandler(testConfig(), logger.Nop())
	require.NoError(t, h.Seed())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return h, srv
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func signIn(t *testing.T, srv *httptest.Server) models.LoginResult {
	t.Helper()
	status, env := call(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		models.Credentials{Email: SeedAdminEmail, Password: SeedAdminPassword})
	require.Equal(t, http.StatusOK, status)
	return decode[models.LoginResult](t, env)
}

func TestLogin(t *testing.T) {
	_, srv := newTestServer(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{"valid credentials", models.Credentials{Email: SeedAdminEmail, Password: SeedAdminPassword}, http.StatusOK, "login successful"},
		{"wrong password", models.Credentials{Email: SeedAdminEmail, Password: "nope"}, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"unknown email", models.Credentials{Email: "ghost@example.com", Password: "x"}, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"missing password", models.Credentials{Email: SeedAdminEmail}, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"not an object", []int{1}, http.StatusBadRequest, app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, srv, http.MethodPost, "/api/v1/auth/login", "", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestLogin_ReturnsProfileAndTokens(t *testing.T) {
	_, srv := newTestServer(t)

	res := signIn(t, srv)

	assert.Equal(t, SeedAdminEmail, res.User.String("email"))
	assert.Equal(t, models.RoleAdmin, res.User.String("role"))
	assert.NotEmpty(t, res.Tokens.Access.Token)
	assert.NotEmpty(t, res.Tokens.Refresh.Token)
	assert.NotEqual(t, res.Tokens.Access.Token, res.Tokens.Refresh.Token)

	_, err := time.Parse(time.RFC3339, res.Tokens.Access.Expires)
	assert.NoError(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	_, srv := newTestServer(t)
	res := signIn(t, srv)

	tests := []struct {
		name    string
		token   string
		header  string
		status  int
		message string
	}{
		{name: "no header", status: http.StatusUnauthorized, message: app.MsgPleaseAuthenticate},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, message: app.MsgPleaseAuthenticate},
		{name: "garbage token", token: "not-a-jwt", status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
		{name: "refresh token", token: res.Tokens.Refresh.Token, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
		{name: "access token", token: res.Tokens.Access.Token, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/me", nil)
			require.NoError(t, err)
			switch {
			case tt.header != "":
				req.Header.Set("Authorization", tt.header)
			case tt.token != "":
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			var env envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.message != "" {
				assert.Equal(t, tt.message, env.Message)
				assert.Equal(t, "error", env.Status)
			}
		})
	}
}

func TestMe(t *testing.T) {
	_, srv := newTestServer(t)
	res := signIn(t, srv)

	status, env := call(t, srv, http.MethodGet, "/api/v1/auth/me", res.Tokens.Access.Token, nil)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)
	profile := decode[models.UserProfile](t, env)
	assert.Equal(t, "Administrator", profile.String("name"))
}

func TestLogout_RevokesPair(t *testing.T) {
	_, srv := newTestServer(t)
	res := signIn(t, srv)

	status, _ := call(t, srv, http.MethodPost, "/api/v1/auth/logout", "",
		models.LogoutRequest{RefreshToken: res.Tokens.Refresh.Token})
	require.Equal(t, http.StatusOK, status)

	status, env := call(t, srv, http.MethodGet, "/api/v1/users", res.Tokens.Access.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, env.Message)

	other := signIn(t, srv)
	status, _ = call(t, srv, http.MethodGet, "/api/v1/users", other.Tokens.Access.Token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestLogout_UnknownTokenSucceeds(t *testing.T) {
	_, srv := newTestServer(t)

	status, env := call(t, srv, http.MethodPost, "/api/v1/auth/logout", "", models.LogoutRequest{RefreshToken: "whatever"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)
}

func TestUsersCRUD(t *testing.T) {
	_, srv := newTestServer(t)
	token := signIn(t, srv).Tokens.Access.Token

	status, env := call(t, srv, http.MethodPost, "/api/v1/users", token,
		models.UserInput{Name: "Grace", Email: "grace@example.com", Password: "pw", Role: models.RoleUser})
	require.Equal(t, http.StatusCreated, status)
	created := decode[models.User](t, env)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	status, env = call(t, srv, http.MethodPost, "/api/v1/users", token,
		models.UserInput{Name: "Dup", Email: "GRACE@example.com", Password: "pw", Role: models.RoleUser})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, app.MsgEmailAlreadyTaken, env.Message)

	role := models.RoleAdmin
	status, env = call(t, srv, http.MethodPatch, "/api/v1/users/"+created.ID, token, models.UserPatch{Role: &role})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.RoleAdmin, decode[models.User](t, env).Role)

	status, env = call(t, srv, http.MethodPatch, "/api/v1/users/"+created.ID, token, models.UserPatch{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, app.MsgNothingToUpdate, env.Message)

	status, env = call(t, srv, http.MethodGet, "/api/v1/users/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "grace@example.com", decode[models.User](t, env).Email)

	status, _ = call(t, srv, http.MethodDelete, "/api/v1/users/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, srv, http.MethodGet, "/api/v1/users/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, app.MsgUserNotFound, env.Message)
}

func TestUsers_ChangedPasswordIsUsedForLogin(t *testing.T) {
	_, srv := newTestServer(t)
	res := signIn(t, srv)

	password := "rotated"
	status, _ := call(t, srv, http.MethodPatch, "/api/v1/users/"+res.User.String("id"), res.Tokens.Access.Token,
		models.UserPatch{Password: &password})
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		models.Credentials{Email: SeedAdminEmail, Password: SeedAdminPassword})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		models.Credentials{Email: SeedAdminEmail, Password: password})
	assert.Equal(t, http.StatusOK, status)
}

func TestUsers_Paging(t *testing.T) {
	_, srv := newTestServer(t)
	token := signIn(t, srv).Tokens.Access.Token

	for _, email := range []string{"a@x.io", "b@x.io", "c@x.io", "d@x.io"} {
		status, _ := call(t, srv, http.MethodPost, "/api/v1/users", token,
			models.UserInput{Name: email, Email: email, Password: "pw", Role: models.RoleUser})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := call(t, srv, http.MethodGet, "/api/v1/users?page=2&limit=2", token, nil)
	require.Equal(t, http.StatusOK, status)

	page := decode[models.Page[models.User]](t, env)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 5, page.TotalResults)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "b@x.io", page.Results[0].Email)

	status, env = call(t, srv, http.MethodGet, "/api/v1/users?page=zero", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, app.MsgInvalidDataProvided, env.Message)
}

func TestStreams(t *testing.T) {
	_, srv := newTestServer(t)
	token := signIn(t, srv).Tokens.Access.Token

	status, env := call(t, srv, http.MethodPost, "/api/v1/stream-info", token,
		models.StreamInput{Title: "Q&A", StreamerID: "u1"})
	require.Equal(t, http.StatusCreated, status)
	stream := decode[models.Stream](t, env)
	assert.Equal(t, models.StreamScheduled, stream.Status)
	assert.True(t, stream.StartedAt.IsZero())

	live := models.StreamLive
	status, env = call(t, srv, http.MethodPatch, "/api/v1/stream-info/"+stream.ID, token, models.StreamPatch{Status: &live})
	require.Equal(t, http.StatusOK, status)
	updated := decode[models.Stream](t, env)
	assert.Equal(t, models.StreamLive, updated.Status)
	assert.False(t, updated.StartedAt.IsZero())

	bogus := "paused"
	status, env = call(t, srv, http.MethodPatch, "/api/v1/stream-info/"+stream.ID, token, models.StreamPatch{Status: &bogus})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, app.MsgInvalidDataProvided, env.Message)

	status, env = call(t, srv, http.MethodGet, "/api/v1/stream-info", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, decode[models.Page[models.Stream]](t, env).TotalResults)

	status, _ = call(t, srv, http.MethodDelete, "/api/v1/stream-info/"+stream.ID, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, srv, http.MethodDelete, "/api/v1/stream-info/"+stream.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, app.MsgStreamNotFound, env.Message)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	_, srv := newTestServer(t)

	status, env := call(t, srv, http.MethodGet, "/api/v2/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, app.MsgRouteNotFound, env.Message)

	status, _ = call(t, srv, http.MethodPut, "/api/v1/auth/login", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"reuses incoming id", "req-123"},
		{"generates id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(testConfig(), &logger.Logger{Logger: zerolog.New(&buf)})
			buf.Reset()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.Len(t, got, 36)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithLogging_RecordsResponse(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(testConfig(), &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("hello"))
	})

	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Contains(t, buf.String(), `"status":202`)
	assert.Contains(t, buf.String(), `"size":5`)
	assert.Contains(t, buf.String(), `"uri":"/ping"`)
	assert.Contains(t, buf.String(), `"trace_id"`)
}
