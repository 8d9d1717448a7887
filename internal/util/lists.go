// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "strings"

// SplitList splits a comma-separated string into trimmed non-empty items.
// Used for tags, technologies, features, and event highlights, which are
// stored as a single comma-joined column.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// JoinList joins items into the comma-separated storage form.
// JoinList(SplitList(s)) normalizes whitespace and drops empty items.
func JoinList(items []string) string {
	return strings.Join(items, ",")
}
