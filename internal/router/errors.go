package router

import "errors"

var (
	// ErrRedirectLoop is returned by Resolve when redirects do not settle
	// within MaxRedirects hops.
	ErrRedirectLoop = errors.New("redirect loop detected")
	// ErrNoRoute is returned by Resolve when neither a route nor the
	// catch-all matches the path.
	ErrNoRoute = errors.New("no route matches path")
)
