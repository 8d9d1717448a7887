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

func seedTestimonial(t *testing.T, app *testApp) store.Testimonial {
	t.Helper()
	now := time.Now()
	tm, err := app.queries.CreateTestimonial(t.Context(), store.CreateTestimonialParams{
		Name:      "Grace Hopper",
		Company:   "Navy Labs",
		Rating:    5,
		Text:      "Excellent compilers.",
		Status:    TestimonialStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return tm
}

func TestApproveTestimonial(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	tm := seedTestimonial(t, app)

	resp := app.postForm(t, redirectAdminTestimonials+"/"+strconv.FormatInt(tm.ID, 10)+"/status",
		url.Values{"status": {TestimonialStatusApproved}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	got, err := app.queries.GetTestimonialByID(t.Context(), tm.ID)
	require.NoError(t, err)
	assert.Equal(t, TestimonialStatusApproved, got.Status)
	assert.Equal(t, tm.Text, got.Text, "status change leaves content alone")
	assert.Equal(t, tm.Featured, got.Featured)
}

func TestToggleFeaturedFlipsFlag(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	tm := seedTestimonial(t, app)
	featuredPath := redirectAdminTestimonials + "/" + strconv.FormatInt(tm.ID, 10) + "/featured"

	resp := app.postForm(t, featuredPath, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	got, err := app.queries.GetTestimonialByID(t.Context(), tm.ID)
	require.NoError(t, err)
	assert.True(t, got.Featured)

	// Toggling again flips it back
	app.postForm(t, featuredPath, nil)
	got, err = app.queries.GetTestimonialByID(t.Context(), tm.ID)
	require.NoError(t, err)
	assert.False(t, got.Featured)
}

func TestApprovedTestimonialsVisibleOnPublicList(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	tm := seedTestimonial(t, app)

	visible, err := app.queries.ListApprovedTestimonials(t.Context())
	require.NoError(t, err)
	assert.Empty(t, visible, "pending testimonials stay hidden")

	app.postForm(t, redirectAdminTestimonials+"/"+strconv.FormatInt(tm.ID, 10)+"/status",
		url.Values{"status": {TestimonialStatusApproved}})

	visible, err = app.queries.ListApprovedTestimonials(t.Context())
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, tm.ID, visible[0].ID)
}
