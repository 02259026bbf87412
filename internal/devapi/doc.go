// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devapi is an in-memory stand-in of the remote administration
// service. It serves the same /api/v1 surface the console talks to, so the
// console can be run and tested without the production backend.
//
// All responses use the {"status","message","data"} envelope. Protected
// routes require an HS256 bearer token issued by /api/v1/auth/login; tokens
// revoked through /api/v1/auth/logout are rejected with 401 until the process
// exits.
package devapi
