// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the development API and the
// console services.
//
// The development API writes these into the "message" field of its response
// envelope; the console services match on them to turn a transport error into
// a business error. Keeping them in one place keeps both sides in step.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidCredentials = "incorrect email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPleaseAuthenticate is returned when a protected endpoint is called
	// without a bearer token.
	MsgPleaseAuthenticate = "please authenticate"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired,
	// malformed, signed with another key or revoked.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUserNotFound is returned when a user ID does not exist.
	MsgUserNotFound = "user not found"

	// MsgStreamNotFound is returned when a stream ID does not exist.
	MsgStreamNotFound = "stream not found"

	// MsgEmailAlreadyTaken is returned when a user is created or renamed to
	// an email that another account already uses.
	MsgEmailAlreadyTaken = "email already taken"

	// MsgNothingToUpdate is returned for a PATCH request without fields.
	MsgNothingToUpdate = "nothing to update"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "not found"
)
