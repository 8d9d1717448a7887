// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "ai,web", []string{"ai", "web"}},
		{"whitespace and trailing commas", "ai, web dev ,  ", []string{"ai", "web dev"}},
		{"empty string", "", nil},
		{"only commas", ",,,", nil},
		{"only whitespace", "   ", nil},
		{"single item", "golang", []string{"golang"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	got := JoinList(SplitList("ai, web dev ,  "))
	if got != "ai,web dev" {
		t.Errorf("round trip = %q, want %q", got, "ai,web dev")
	}

	// A normalized string survives another round trip unchanged.
	if again := JoinList(SplitList(got)); again != got {
		t.Errorf("second round trip changed value: %q != %q", again, got)
	}
}
