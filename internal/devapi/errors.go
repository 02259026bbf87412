package devapi

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrTokenRevoked               = errors.New("token revoked")
	ErrUserNotFound               = errors.New("user not found")
	ErrStreamNotFound             = errors.New("stream not found")
	ErrEmailTaken                 = errors.New("email already taken")
	ErrNothingToUpdate            = errors.New("nothing to update")
	ErrInvalidData                = errors.New("invalid data")
)
