// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates returns the template filesystem rooted at templates/.
func Templates() (fs.FS, error) {
	return fs.Sub(files, "templates")
}

// Static returns the static asset filesystem rooted at static/.
func Static() (fs.FS, error) {
	return fs.Sub(files, "static")
}
