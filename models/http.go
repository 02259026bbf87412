package models

// Credentials is the body of the login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the data payload of a successful login.
type LoginResult struct {
	User   UserProfile `json:"user"`
	Tokens TokenPair   `json:"tokens"`
}

// LogoutRequest is the body of the logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}
