package router

// Console paths.
const (
	RootPath       = "/"
	LoginPath      = "/login"
	LogoutPath     = "/logout"
	UsersPath      = "/users"
	UserCreatePath = "/users/create"
	UserEditPath   = "/users/{id}/edit"
	StreamsPath    = "/streams"
	StreamViewPath = "/streams/{id}/view"
	catchAllPath   = "/*"
)

// Screen identifiers rendered by the console.
const (
	ScreenLogin      = "login"
	ScreenLogout     = "logout"
	ScreenUsers      = "users"
	ScreenUserCreate = "user_create"
	ScreenUserEdit   = "user_edit"
	ScreenStreams    = "streams"
	ScreenStreamView = "stream_view"
)

// Access selects the guard applied to a route.
type Access int

const (
	// Public routes render regardless of the session.
	Public Access = iota
	// Protected routes are wrapped in RequireAuth.
	Protected
	// Anonymous routes are wrapped in RequireAnonymous.
	Anonymous
)

func (a Access) String() string {
	switch a {
	case Protected:
		return "protected"
	case Anonymous:
		return "anonymous"
	default:
		return "public"
	}
}

// Route is one entry of the route table. A route with RedirectTo set renders
// nothing and forwards once its guard has passed.
type Route struct {
	Pattern    string
	Screen     string
	Access     Access
	RedirectTo string
}

// DefaultRoutes returns the console route table.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: LoginPath, Screen: ScreenLogin, Access: Anonymous},
		{Pattern: LogoutPath, Screen: ScreenLogout, Access: Public},

		{Pattern: RootPath, Access: Protected, RedirectTo: UsersPath},
		{Pattern: UsersPath, Screen: ScreenUsers, Access: Protected},
		{Pattern: UserCreatePath, Screen: ScreenUserCreate, Access: Protected},
		{Pattern: UserEditPath, Screen: ScreenUserEdit, Access: Protected},
		{Pattern: StreamsPath, Screen: ScreenStreams, Access: Protected},
		{Pattern: StreamViewPath, Screen: ScreenStreamView, Access: Protected},

		{Pattern: catchAllPath, Access: Public, RedirectTo: RootPath},
	}
}

// UserEditLocation returns the edit path of user id.
func UserEditLocation(id string) string {
	return "/users/" + id + "/edit"
}

// StreamViewLocation returns the detail path of stream id.
func StreamViewLocation(id string) string {
	return "/streams/" + id + "/view"
}
