package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrSessionExpired      = errors.New("session expired, please log in again")
	ErrForbidden           = errors.New("operation not permitted")
	ErrNotFound            = errors.New("not found")
	ErrEmailTaken          = errors.New("email already taken")
	ErrNothingToUpdate     = errors.New("nothing to update")
	ErrServerUnavailable   = errors.New("server is unavailable")
	ErrNoAccessToken       = errors.New("login response carries no access token")

	ErrVersionIsNotSpecified   = errors.New("version is not specified")
	ErrInvalidProfileNameExpr  = errors.New("invalid profile name expression")
	ErrValidationNoID          = errors.New("no id provided")
	ErrValidationNoEmail       = errors.New("no email provided")
	ErrValidationNoPassword    = errors.New("no password provided")
	ErrValidationNoName        = errors.New("no name provided")
	ErrValidationInvalidEmail  = errors.New("invalid email")
	ErrValidationInvalidRole   = errors.New("invalid role")
	ErrValidationNoTitle       = errors.New("no title provided")
	ErrValidationNoStreamer    = errors.New("no streamer id provided")
	ErrValidationInvalidStatus = errors.New("invalid stream status")
)
