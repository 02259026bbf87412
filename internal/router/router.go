package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/stream-console/internal/logger"
)

// MaxRedirects bounds the number of redirects Resolve follows.
const MaxRedirects = 8

// Resolution is the screen Resolve settled on.
type Resolution struct {
	// Path is the final location after redirects.
	Path string
	// Screen is the screen to render at Path.
	Screen string
	// Params holds the URL parameters of the matched pattern, e.g. "id".
	Params map[string]string
	// From is the location a RequireAuth guard interrupted, if any.
	From string
	// Redirects counts the hops taken to reach Path.
	Redirects int
}

// Param returns the URL parameter key, or an empty string.
func (r Resolution) Param(key string) string {
	return r.Params[key]
}

// Router resolves console paths against a route table.
type Router struct {
	mux    *chi.Mux
	routes map[string]Route
	auth   Authenticator

	logger *logger.Logger
}

// New builds a Router over routes. auth is consulted on every Resolve.
func New(routes []Route, auth Authenticator, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}

	r := &Router{
		mux:    chi.NewMux(),
		routes: make(map[string]Route, len(routes)),
		auth:   auth,
		logger: log.WithComponent("router"),
	}

	// Matching only needs the route tree; handlers never run.
	noop := func(http.ResponseWriter, *http.Request) {}
	for _, route := range routes {
		r.routes[route.Pattern] = route
		r.mux.Get(route.Pattern, noop)
	}

	return r
}

// Resolve maps path to a screen, applying route guards and following
// redirects. The first location interrupted by RequireAuth is reported in
// Resolution.From.
func (r *Router) Resolve(ctx context.Context, path string) (Resolution, error) {
	var from string
	location := cleanPath(path)

	for hops := 0; hops <= MaxRedirects; hops++ {
		route, params, ok := r.match(location)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: %s", ErrNoRoute, location)
		}

		decision := r.guard(ctx, route, location)
		if decision.Redirected() {
			if from == "" && decision.Redirect.From != "" {
				from = decision.Redirect.From
			}
			r.logger.Debug().
				Str("from", location).
				Str("to", decision.Redirect.To).
				Str("access", route.Access.String()).
				Msg("guard redirect")
			location = decision.Redirect.To
			continue
		}

		if route.RedirectTo != "" {
			location = route.RedirectTo
			continue
		}

		return Resolution{
			Path:      location,
			Screen:    decision.Screen,
			Params:    params,
			From:      from,
			Redirects: hops,
		}, nil
	}

	r.logger.Error().Str("path", path).Int("max_redirects", MaxRedirects).Msg("redirect loop")
	return Resolution{}, fmt.Errorf("%w: %s", ErrRedirectLoop, path)
}

func (r *Router) guard(ctx context.Context, route Route, location string) Decision {
	switch route.Access {
	case Protected:
		return RequireAuth(ctx, r.auth, location, route.Screen)
	case Anonymous:
		return RequireAnonymous(ctx, r.auth, route.Screen)
	default:
		return Decision{Screen: route.Screen}
	}
}

func (r *Router) match(location string) (Route, map[string]string, bool) {
	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, location) {
		return Route{}, nil, false
	}

	route, ok := r.routes[rctx.RoutePattern()]
	if !ok {
		route, ok = r.routes[catchAllPath]
	}
	if !ok {
		return Route{}, nil, false
	}

	var params map[string]string
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		if params == nil {
			params = make(map[string]string, len(rctx.URLParams.Keys))
		}
		params[key] = rctx.URLParams.Values[i]
	}

	return route, params, true
}

// cleanPath drops the query, the fragment and a trailing slash, and
// guarantees a leading slash.
func cleanPath(path string) string {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
