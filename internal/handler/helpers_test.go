// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aisolutions/website/internal/store"
)

func TestMatchesSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		fields []string
		want   bool
	}{
		{"empty search matches everything", "", []string{"anything"}, true},
		{"case insensitive", "HELLO", []string{"say hello world"}, true},
		{"matches any field", "beta", []string{"alpha", "the beta release"}, true},
		{"no match", "gamma", []string{"alpha", "beta"}, false},
		{"empty fields no match", "x", []string{"", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesSearch(tt.search, tt.fields...))
		})
	}
}

func TestMatchesChoice(t *testing.T) {
	assert.True(t, matchesChoice("", "draft"), "empty selection matches everything")
	assert.True(t, matchesChoice(FilterAll, "draft"), "all sentinel matches everything")
	assert.True(t, matchesChoice("draft", "draft"))
	assert.False(t, matchesChoice("published", "draft"))
}

func samplePosts() []store.Post {
	return []store.Post{
		{ID: 1, Title: "Intro to Go", Excerpt: "getting started", Category: "engineering", Status: PostStatusPublished},
		{ID: 2, Title: "Scaling SQLite", Excerpt: "production tips", Category: "engineering", Status: PostStatusDraft},
		{ID: 3, Title: "Design systems", Excerpt: "a primer", Category: "design", Status: PostStatusPublished},
	}
}

func TestFilterPostsIdentity(t *testing.T) {
	posts := samplePosts()

	// Empty search plus "all" dropdowns must return the full list unchanged
	got := filterPosts(posts, "", FilterAll, FilterAll)
	assert.Equal(t, posts, got)

	got = filterPosts(posts, "", "", "")
	assert.Equal(t, posts, got)
}

func TestFilterPostsDimensionsCombineWithAnd(t *testing.T) {
	posts := samplePosts()

	got := filterPosts(posts, "", PostStatusPublished, "engineering")
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(1), got[0].ID)
	}

	got = filterPosts(posts, "sqlite", FilterAll, FilterAll)
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(2), got[0].ID)
	}
}

func TestFilterPostsNoMatchReturnsEmpty(t *testing.T) {
	got := filterPosts(samplePosts(), "nonexistent term", FilterAll, FilterAll)
	assert.Empty(t, got)
}

func TestFilterContacts(t *testing.T) {
	contacts := []store.Contact{
		{ID: 1, Name: "Ada", Email: "ada@example.com", Subject: "Pricing", Message: "How much?", Status: ContactStatusNew, Priority: ContactPriorityNormal},
		{ID: 2, Name: "Grace", Email: "grace@example.com", Subject: "Support", Message: "Broken login", Status: ContactStatusResolved, Priority: ContactPriorityHigh},
	}

	assert.Equal(t, contacts, filterContacts(contacts, "", FilterAll, FilterAll))

	got := filterContacts(contacts, "broken", FilterAll, FilterAll)
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(2), got[0].ID)
	}

	got = filterContacts(contacts, "", ContactStatusNew, ContactPriorityNormal)
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(1), got[0].ID)
	}

	assert.Empty(t, filterContacts(contacts, "ada", ContactStatusResolved, FilterAll))
}

func TestValidChoice(t *testing.T) {
	assert.True(t, validChoice(PostStatusDraft, PostStatuses))
	assert.False(t, validChoice("bogus", PostStatuses))
	assert.False(t, validChoice("", PostStatuses))
}
