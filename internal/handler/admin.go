// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
)

const activityPageSize = 50

// AdminHandler handles the dashboard and activity log routes.
type AdminHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AdminHandler {
	return &AdminHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// DashboardData holds the content counts shown on the dashboard.
type DashboardData struct {
	PostCount           int64
	PublishedPostCount  int64
	PhotoCount          int64
	EventCount          int64
	ServiceCount        int64
	TestimonialCount    int64
	PendingTestimonials int64
	ContactCount        int64
	NewContacts         int64
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data DashboardData
	var err error

	counts := []struct {
		dst  *int64
		load func() (int64, error)
	}{
		{&data.PostCount, func() (int64, error) { return h.queries.CountPosts(ctx) }},
		{&data.PublishedPostCount, func() (int64, error) { return h.queries.CountPostsByStatus(ctx, PostStatusPublished) }},
		{&data.PhotoCount, func() (int64, error) { return h.queries.CountPhotos(ctx) }},
		{&data.EventCount, func() (int64, error) { return h.queries.CountEvents(ctx) }},
		{&data.ServiceCount, func() (int64, error) { return h.queries.CountServices(ctx) }},
		{&data.TestimonialCount, func() (int64, error) { return h.queries.CountTestimonials(ctx) }},
		{&data.PendingTestimonials, func() (int64, error) { return h.queries.CountTestimonialsByStatus(ctx, TestimonialStatusPending) }},
		{&data.ContactCount, func() (int64, error) { return h.queries.CountContacts(ctx) }},
		{&data.NewContacts, func() (int64, error) { return h.queries.CountContactsByStatus(ctx, ContactStatusNew) }},
	}
	for _, c := range counts {
		if *c.dst, err = c.load(); err != nil {
			logAndInternalError(w, "failed to load dashboard counts", "error", err)
			return
		}
	}

	h.render(w, r, "admin/dashboard", "Dashboard", data)
}

// ActivityData holds data for the activity log template.
type ActivityData struct {
	Entries    []store.LogEntry
	Total      int64
	Page       int
	TotalPages int
}

// Activity handles GET /admin/activity.
func (h *AdminHandler) Activity(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	total, err := h.queries.CountLogEntries(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count log entries", "error", err)
		return
	}

	totalPages := int((total + activityPageSize - 1) / activityPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	entries, err := h.queries.ListLogEntries(r.Context(), store.ListLogEntriesParams{
		Limit:  activityPageSize,
		Offset: int64(page-1) * activityPageSize,
	})
	if err != nil {
		logAndInternalError(w, "failed to list log entries", "error", err)
		return
	}

	h.render(w, r, "admin/activity", "Activity Log", ActivityData{
		Entries:    entries,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	})
}

func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
