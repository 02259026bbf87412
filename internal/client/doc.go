// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the console application runtime.
//
// It ties the secure session store to the terminal UI for a single process
// lifetime: version check on start, the UI loop, and closing the store.
package client
