// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostDerivesSlug(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, redirectAdminPosts, url.Values{
		"title":   {"Hello, World!  Title"},
		"content": {"Some body text"},
		"status":  {PostStatusDraft},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectAdminPosts, resp.Header.Get("Location"))

	posts, err := app.queries.ListPosts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello-world-title", posts[0].Slug)
	assert.False(t, posts[0].PublishedAt.Valid, "draft has no publish time")
}

func TestCreatePublishedPostStampsPublishedAt(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.postForm(t, redirectAdminPosts, url.Values{
		"title":   {"Launch Day"},
		"content": {"We shipped."},
		"status":  {PostStatusPublished},
	})

	posts, err := app.queries.ListPosts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].PublishedAt.Valid)
}

func TestUpdatePostPublishTransition(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.postForm(t, redirectAdminPosts, url.Values{
		"title":   {"Draft First"},
		"content": {"Body"},
		"status":  {PostStatusDraft},
	})

	posts, err := app.queries.ListPosts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].ID
	idPath := redirectAdminPosts + "/" + strconv.FormatInt(id, 10)

	// Publishing stamps the publish time
	app.postForm(t, idPath, url.Values{
		"title":   {"Draft First"},
		"content": {"Body"},
		"status":  {PostStatusPublished},
	})
	post, err := app.queries.GetPostByID(t.Context(), id)
	require.NoError(t, err)
	require.True(t, post.PublishedAt.Valid)
	publishedAt := post.PublishedAt.Time

	// Re-saving while published keeps the original timestamp
	app.postForm(t, idPath, url.Values{
		"title":   {"Draft First, edited"},
		"content": {"Body"},
		"status":  {PostStatusPublished},
	})
	post, err = app.queries.GetPostByID(t.Context(), id)
	require.NoError(t, err)
	require.True(t, post.PublishedAt.Valid)
	assert.True(t, post.PublishedAt.Time.Equal(publishedAt))

	// Unpublishing clears it
	app.postForm(t, idPath, url.Values{
		"title":   {"Draft First, edited"},
		"content": {"Body"},
		"status":  {PostStatusArchived},
	})
	post, err = app.queries.GetPostByID(t.Context(), id)
	require.NoError(t, err)
	assert.False(t, post.PublishedAt.Valid)
}

func TestCreatePostRejectsDuplicateSlug(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.postForm(t, redirectAdminPosts, url.Values{
		"title":   {"Same Title"},
		"content": {"One"},
		"status":  {PostStatusDraft},
	})
	resp := app.postForm(t, redirectAdminPosts, url.Values{
		"title":   {"Same Title"},
		"content": {"Two"},
		"status":  {PostStatusDraft},
	})

	// Validation failure re-renders the form instead of redirecting
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "already in use"))

	posts, err := app.queries.ListPosts(t.Context())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestDeletePostRemovesFromList(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	app.postForm(t, redirectAdminPosts, url.Values{
		"title":   {"Doomed Post"},
		"content": {"Body"},
		"status":  {PostStatusDraft},
	})

	posts, err := app.queries.ListPosts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].ID

	resp := app.postForm(t, redirectAdminPosts+"/"+strconv.FormatInt(id, 10)+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	posts, err = app.queries.ListPosts(t.Context())
	require.NoError(t, err)
	assert.Empty(t, posts)
}
