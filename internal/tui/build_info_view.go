// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/stream-console/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, apiURL string) string {
	var b strings.Builder

	b.WriteString("Application: stream-console\n")
	for _, f := range info.Fields() {
		b.WriteString(f[0] + ": " + f[1] + "\n")
	}
	b.WriteString("API: ")
	b.WriteString(valueOrNA(apiURL))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}
