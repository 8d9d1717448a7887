// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// matchesSearch reports whether any of the fields contains the search term,
// case-insensitively. An empty search matches everything.
func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// matchesChoice reports whether a value passes a dropdown filter.
// Empty and "all" select everything; anything else requires equality.
func matchesChoice(selected, value string) bool {
	return selected == "" || selected == FilterAll || selected == value
}

// filterSlice returns the items that pass the keep predicate. Filter
// dimensions combine with AND inside the predicate; a search term combines
// its fields with OR via matchesSearch.
func filterSlice[T any](items []T, keep func(T) bool) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// validChoice reports whether value is one of the allowed values.
func validChoice(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}

// parseIDParam extracts the {id} URL parameter as an int64.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// clientIP extracts the client IP, honoring reverse proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
