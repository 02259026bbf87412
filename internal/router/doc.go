// Package router gates console navigation on the authentication state held in
// secure storage.
//
// Two guards decide whether a screen may render: [RequireAuth] sends
// anonymous operators to /login and remembers where they were going,
// [RequireAnonymous] sends authenticated operators away from /login. Both
// re-read the [Authenticator] on every evaluation, so a session purged by the
// HTTP client's 401 interceptor is observed on the very next navigation.
//
// [Router] resolves a path against the console route table using chi's route
// tree, applies the guard of the matched route group, and follows redirects
// up to [MaxRedirects] hops.
package router
