// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(t)

	resp := app.postForm(t, RouteLogin, url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	})

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectAdmin, resp.Header.Get("Location"))

	// The session now grants access to protected pages
	resp = app.get(t, redirectAdminPosts)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := app.postForm(t, RouteLogin, url.Values{
		"email":    {testAdminEmail},
		"password": {"wrong-password"},
	})

	// Failure returns to the login page, not the dashboard
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectLogin, resp.Header.Get("Location"))

	// And the session stays unauthenticated
	resp = app.get(t, redirectAdminPosts)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectLogin, resp.Header.Get("Location"))
}

func TestLoginUnknownUserSameResponse(t *testing.T) {
	app := newTestApp(t)

	resp := app.postForm(t, RouteLogin, url.Values{
		"email":    {"nobody@aisolutions.com"},
		"password": {"whatever123"},
	})

	// Unknown accounts get the same redirect as a wrong password, so the
	// response does not reveal whether the account exists
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectLogin, resp.Header.Get("Location"))
}

func TestLoginRedirectsBackToRequestedPage(t *testing.T) {
	app := newTestApp(t)

	// Visiting a protected page while logged out bounces to login
	resp := app.get(t, redirectAdminContacts)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, redirectLogin, resp.Header.Get("Location"))

	// After logging in the user lands on the page they wanted
	resp = app.postForm(t, RouteLogin, url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectAdminContacts, resp.Header.Get("Location"))
}

func TestLoginPageRedirectsAuthenticatedUser(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, RouteLogin)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectAdmin, resp.Header.Get("Location"))
}

func TestDeletedUserSessionIsDestroyed(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	user, err := app.queries.GetUserByEmail(t.Context(), testAdminEmail)
	require.NoError(t, err)
	require.NoError(t, app.queries.DeleteUser(t.Context(), user.ID))

	// The session still carries the old user ID but the row is gone, so
	// the next admin request tears the session down and bounces to login
	resp := app.get(t, redirectAdminPosts)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectLogin, resp.Header.Get("Location"))

	// The stale session is gone: the login page renders instead of
	// redirecting to the dashboard
	resp = app.get(t, RouteLogin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, RouteLogout, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectLogin, resp.Header.Get("Location"))

	resp = app.get(t, redirectAdminPosts)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, redirectLogin, resp.Header.Get("Location"))
}
