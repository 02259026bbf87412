package models

// TokenDetail is a single bearer credential issued by the remote service.
//
// Expires is kept exactly as the server sent it. The console never interprets
// it: the server is the only authority on token expiry.
type TokenDetail struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

// TokenPair groups the access and refresh credentials returned on login.
type TokenPair struct {
	Access  TokenDetail `json:"access"`
	Refresh TokenDetail `json:"refresh"`
}

// TokenData is the session record persisted under [AuthToken].
//
// Stored shape:
//
//	{"tokens":{"access":{"token":"...","expires":"..."},"refresh":{"token":"...","expires":"..."}}}
//
// A TokenData is always written wholesale; it is never patched field by field.
type TokenData struct {
	Tokens TokenPair `json:"tokens"`
}

// NewTokenData wraps a token pair received from the login endpoint into the
// stored session shape.
func NewTokenData(pair TokenPair) TokenData {
	return TokenData{Tokens: pair}
}

// AccessToken returns the access token, or an empty string.
func (t TokenData) AccessToken() string {
	return t.Tokens.Access.Token
}

// RefreshToken returns the refresh token, or an empty string.
func (t TokenData) RefreshToken() string {
	return t.Tokens.Refresh.Token
}

// Authenticated reports whether the record carries a non-empty access token.
// Expiry is deliberately not checked.
func (t TokenData) Authenticated() bool {
	return t.Tokens.Access.Token != ""
}
