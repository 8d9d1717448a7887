// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
)

// TestimonialsHandler handles testimonial moderation routes.
type TestimonialsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewTestimonialsHandler creates a new TestimonialsHandler.
func NewTestimonialsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *TestimonialsHandler {
	return &TestimonialsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// TestimonialsListData holds data for the testimonials list template.
type TestimonialsListData struct {
	Testimonials []store.Testimonial
	Total        int
	Search       string
	Status       string
	Statuses     []string
}

// filterTestimonials applies the list filters in memory. Search matches
// name, company, and the testimonial text.
func filterTestimonials(items []store.Testimonial, search, status string) []store.Testimonial {
	return filterSlice(items, func(t store.Testimonial) bool {
		return matchesSearch(search, t.Name, t.Company, t.Text) &&
			matchesChoice(status, t.Status)
	})
}

// List handles GET /admin/testimonials.
func (h *TestimonialsHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	testimonials, err := h.queries.ListTestimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}

	filtered := filterTestimonials(testimonials, search, status)

	h.render(w, r, "admin/testimonials_list", "Testimonials", TestimonialsListData{
		Testimonials: filtered,
		Total:        len(filtered),
		Search:       search,
		Status:       status,
		Statuses:     TestimonialStatuses,
	})
}

// TestimonialFormData holds data for the testimonial form template.
type TestimonialFormData struct {
	Testimonial *store.Testimonial
	Statuses    []string
	Errors      map[string]string
	FormValues  map[string]string
	IsEdit      bool
}

// EditForm handles GET /admin/testimonials/{id}.
func (h *TestimonialsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Invalid testimonial ID")
		return
	}

	t, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTestimonials, "testimonial", id,
		func(id int64) (store.Testimonial, error) { return h.queries.GetTestimonialByID(r.Context(), id) })
	if !ok {
		return
	}

	h.render(w, r, "admin/testimonials_form", "Edit Testimonial", TestimonialFormData{
		Testimonial: &t,
		Statuses:    TestimonialStatuses,
		Errors:      make(map[string]string),
		FormValues: map[string]string{
			"name":      t.Name,
			"role":      t.Role,
			"company":   t.Company,
			"project":   t.Project,
			"rating":    strconv.FormatInt(t.Rating, 10),
			"text":      t.Text,
			"image_url": t.ImageURL,
			"status":    t.Status,
		},
		IsEdit: true,
	})
}

// Update handles POST /admin/testimonials/{id}.
func (h *TestimonialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Invalid testimonial ID")
		return
	}

	t, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTestimonials, "testimonial", id,
		func(id int64) (store.Testimonial, error) { return h.queries.GetTestimonialByID(r.Context(), id) })
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminTestimonialsID, id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	text := strings.TrimSpace(r.FormValue("text"))
	status := r.FormValue("status")
	rating, _ := strconv.ParseInt(r.FormValue("rating"), 10, 64)

	errs := make(map[string]string)
	if name == "" {
		errs["name"] = "Name is required"
	}
	if text == "" {
		errs["text"] = "Testimonial text is required"
	}
	if rating < 1 || rating > 5 {
		errs["rating"] = "Rating must be between 1 and 5"
	}
	if !validChoice(status, TestimonialStatuses) {
		errs["status"] = "Invalid status"
	}

	if len(errs) > 0 {
		h.render(w, r, "admin/testimonials_form", "Edit Testimonial", TestimonialFormData{
			Testimonial: &t,
			Statuses:    TestimonialStatuses,
			Errors:      errs,
			FormValues: map[string]string{
				"name":      name,
				"role":      r.FormValue("role"),
				"company":   r.FormValue("company"),
				"project":   r.FormValue("project"),
				"rating":    r.FormValue("rating"),
				"text":      text,
				"image_url": r.FormValue("image_url"),
				"status":    status,
			},
			IsEdit: true,
		})
		return
	}

	if _, err := h.queries.UpdateTestimonial(r.Context(), store.UpdateTestimonialParams{
		ID:        id,
		Name:      name,
		Role:      strings.TrimSpace(r.FormValue("role")),
		Company:   strings.TrimSpace(r.FormValue("company")),
		Project:   strings.TrimSpace(r.FormValue("project")),
		Rating:    rating,
		Text:      text,
		ImageURL:  strings.TrimSpace(r.FormValue("image_url")),
		Featured:  t.Featured,
		Status:    status,
		UpdatedAt: time.Now(),
	}); err != nil {
		slog.Error("failed to update testimonial", "error", err, "testimonial_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating testimonial")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Testimonial updated", &userID, clientIP(r), map[string]any{"testimonial_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminTestimonials, "Testimonial updated successfully")
}

// UpdateStatus handles POST /admin/testimonials/{id}/status - approve or
// reject without touching the other fields.
func (h *TestimonialsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Invalid testimonial ID")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminTestimonials) {
		return
	}

	status := r.FormValue("status")
	if !validChoice(status, TestimonialStatuses) {
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Invalid status")
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTestimonials, "testimonial", id,
		func(id int64) (store.Testimonial, error) { return h.queries.GetTestimonialByID(r.Context(), id) }); !ok {
		return
	}

	if err := h.queries.UpdateTestimonialStatus(r.Context(), store.UpdateTestimonialStatusParams{
		Status:    status,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		slog.Error("failed to update testimonial status", "error", err, "testimonial_id", id)
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Error updating testimonial")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Testimonial status changed", &userID, clientIP(r), map[string]any{"testimonial_id": id, "status": status})
	flashSuccess(w, r, h.renderer, redirectAdminTestimonials, "Testimonial "+status)
}

// ToggleFeatured handles POST /admin/testimonials/{id}/featured.
func (h *TestimonialsHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Invalid testimonial ID")
		return
	}

	t, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminTestimonials, "testimonial", id,
		func(id int64) (store.Testimonial, error) { return h.queries.GetTestimonialByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.UpdateTestimonialFeatured(r.Context(), store.UpdateTestimonialFeaturedParams{
		Featured:  !t.Featured,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		slog.Error("failed to toggle featured flag", "error", err, "testimonial_id", id)
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Error updating testimonial")
		return
	}

	message := "Testimonial featured"
	if t.Featured {
		message = "Testimonial unfeatured"
	}
	flashSuccess(w, r, h.renderer, redirectAdminTestimonials, message)
}

// Delete handles POST /admin/testimonials/{id}/delete.
func (h *TestimonialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Invalid testimonial ID")
		return
	}

	if err := h.queries.DeleteTestimonial(r.Context(), id); err != nil {
		slog.Error("failed to delete testimonial", "error", err, "testimonial_id", id)
		flashError(w, r, h.renderer, redirectAdminTestimonials, "Error deleting testimonial")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Testimonial deleted", &userID, clientIP(r), map[string]any{"testimonial_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminTestimonials, "Testimonial deleted")
}

func (h *TestimonialsHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
