// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisolutions/website/internal/store"
	"github.com/aisolutions/website/internal/testutil"
)

func newQueries(t *testing.T) *store.Queries {
	t.Helper()
	return store.New(testutil.NewDB(t))
}

func createPost(t *testing.T, q *store.Queries, title, slug, status string, publishedAt sql.NullTime) store.Post {
	t.Helper()
	now := time.Now()
	p, err := q.CreatePost(t.Context(), store.CreatePostParams{
		Title:       title,
		Slug:        slug,
		Content:     "body",
		Status:      status,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	return p
}

func TestPostSlugExists(t *testing.T) {
	q := newQueries(t)
	p := createPost(t, q, "First", "first", "draft", sql.NullTime{})

	count, err := q.PostSlugExists(t.Context(), "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = q.PostSlugExists(t.Context(), "other")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The post itself is excluded when editing
	count, err = q.PostSlugExistsExcluding(t.Context(), store.PostSlugExistsExcludingParams{
		Slug: "first",
		ID:   p.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListPublishedPostsExcludesDrafts(t *testing.T) {
	q := newQueries(t)
	published := sql.NullTime{Time: time.Now(), Valid: true}
	createPost(t, q, "Live", "live", "published", published)
	createPost(t, q, "Hidden", "hidden", "draft", sql.NullTime{})
	createPost(t, q, "Old", "old", "archived", sql.NullTime{})

	posts, err := q.ListPublishedPosts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "live", posts[0].Slug)

	_, err = q.GetPublishedPostBySlug(t.Context(), "hidden")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpsertSettingReplacesValue(t *testing.T) {
	q := newQueries(t)
	now := time.Now()

	require.NoError(t, q.UpsertSetting(t.Context(), store.UpsertSettingParams{
		Key: "site_name", Value: "First", UpdatedAt: now,
	}))
	require.NoError(t, q.UpsertSetting(t.Context(), store.UpsertSettingParams{
		Key: "site_name", Value: "Second", UpdatedAt: now,
	}))

	s, err := q.GetSetting(t.Context(), "site_name")
	require.NoError(t, err)
	assert.Equal(t, "Second", s.Value)

	settings, err := q.ListSettings(t.Context())
	require.NoError(t, err)
	assert.Len(t, settings, 1, "upsert does not duplicate rows")
}

func TestEnsureAdminUserOnlyRunsOnce(t *testing.T) {
	q := newQueries(t)

	created, err := q.EnsureAdminUser(t.Context(), store.EnsureAdminUserParams{
		Email:        "admin@aisolutions.com",
		PasswordHash: "hash",
		Name:         "Admin",
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = q.EnsureAdminUser(t.Context(), store.EnsureAdminUserParams{
		Email:        "other@aisolutions.com",
		PasswordHash: "hash",
		Name:         "Other",
	})
	require.NoError(t, err)
	assert.False(t, created, "seeding skips once a user exists")

	count, err := q.CountUsers(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLogEntriesPaginationAndCleanup(t *testing.T) {
	q := newQueries(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.CreateLogEntry(t.Context(), store.CreateLogEntryParams{
			Level:     "info",
			Category:  "system",
			Message:   "entry",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	entries, err := q.ListLogEntries(t.Context(), store.ListLogEntriesParams{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	total, err := q.CountLogEntries(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	deleted, err := q.DeleteLogEntriesBefore(t.Context(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}

func TestSequentialUpdatesLastWriteWins(t *testing.T) {
	q := newQueries(t)
	p := createPost(t, q, "Original", "original", "draft", sql.NullTime{})

	// Two editors save from the same loaded row without reloading in
	// between. The row carries no version column, so the later save
	// replaces the earlier one wholesale.
	first := store.UpdatePostParams{
		ID: p.ID, Title: "First Edit", Slug: p.Slug, Content: "first body",
		Category: "ai", Status: "draft", UpdatedAt: time.Now(),
	}
	second := store.UpdatePostParams{
		ID: p.ID, Title: "Second Edit", Slug: p.Slug, Content: "second body",
		Category: "web", Status: "draft", UpdatedAt: time.Now(),
	}

	_, err := q.UpdatePost(t.Context(), first)
	require.NoError(t, err)
	_, err = q.UpdatePost(t.Context(), second)
	require.NoError(t, err)

	got, err := q.GetPostByID(t.Context(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second Edit", got.Title)
	assert.Equal(t, "second body", got.Content)
	assert.Equal(t, "web", got.Category, "the earlier edit leaves no trace")
}

func TestListApprovedTestimonialsOrdersFeaturedFirst(t *testing.T) {
	q := newQueries(t)
	now := time.Now()

	for _, tc := range []struct {
		name     string
		featured bool
		status   string
	}{
		{"plain", false, "approved"},
		{"starred", true, "approved"},
		{"waiting", false, "pending"},
	} {
		_, err := q.CreateTestimonial(t.Context(), store.CreateTestimonialParams{
			Name:      tc.name,
			Rating:    5,
			Text:      "text",
			Featured:  tc.featured,
			Status:    tc.status,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}

	got, err := q.ListApprovedTestimonials(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "starred", got[0].Name)
	assert.Equal(t, "plain", got[1].Name)
}
