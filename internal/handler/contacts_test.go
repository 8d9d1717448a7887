// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisolutions/website/internal/store"
)

func seedContact(t *testing.T, app *testApp) store.Contact {
	t.Helper()
	now := time.Now()
	c, err := app.queries.CreateContact(t.Context(), store.CreateContactParams{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Subject:   "Engine inquiry",
		Message:   "Can you build one?",
		Priority:  ContactPriorityNormal,
		Status:    ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return c
}

func TestResolveContactStampsResolvedAt(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	c := seedContact(t, app)
	statusPath := redirectAdminContacts + "/" + strconv.FormatInt(c.ID, 10) + "/status"

	resp := app.postForm(t, statusPath, url.Values{"status": {ContactStatusResolved}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	got, err := app.queries.GetContactByID(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, ContactStatusResolved, got.Status)
	assert.True(t, got.ResolvedAt.Valid, "resolving stamps the resolution time")

	// Reopening clears the resolution time again
	resp = app.postForm(t, statusPath, url.Values{"status": {ContactStatusInProgress}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	got, err = app.queries.GetContactByID(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, ContactStatusInProgress, got.Status)
	assert.False(t, got.ResolvedAt.Valid)
}

func TestUpdateContactStatusLeavesOtherFieldsAlone(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	c := seedContact(t, app)

	app.postForm(t, redirectAdminContacts+"/"+strconv.FormatInt(c.ID, 10)+"/status",
		url.Values{"status": {ContactStatusArchived}})

	got, err := app.queries.GetContactByID(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Message, got.Message)
	assert.Equal(t, c.Priority, got.Priority)
}

func TestUpdateContactPriority(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	c := seedContact(t, app)

	resp := app.postForm(t, redirectAdminContacts+"/"+strconv.FormatInt(c.ID, 10)+"/priority",
		url.Values{"priority": {ContactPriorityUrgent}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	got, err := app.queries.GetContactByID(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, ContactPriorityUrgent, got.Priority)
	assert.Equal(t, ContactStatusNew, got.Status, "priority change leaves status alone")
}

func TestUpdateContactStatusRejectsUnknownValue(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	c := seedContact(t, app)

	app.postForm(t, redirectAdminContacts+"/"+strconv.FormatInt(c.ID, 10)+"/status",
		url.Values{"status": {"bogus"}})

	got, err := app.queries.GetContactByID(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, ContactStatusNew, got.Status)
}
