// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
	"github.com/aisolutions/website/internal/util"
)

// PhotosHandler handles gallery photo management routes.
type PhotosHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewPhotosHandler creates a new PhotosHandler.
func NewPhotosHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *PhotosHandler {
	return &PhotosHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// PhotosListData holds data for the photos list template.
type PhotosListData struct {
	Photos      []store.Photo
	TotalPhotos int
	Search      string
	Category    string
	Categories  []string
}

// filterPhotos applies the list filters in memory. Search matches title,
// description, and tags.
func filterPhotos(photos []store.Photo, search, category string) []store.Photo {
	return filterSlice(photos, func(p store.Photo) bool {
		return matchesSearch(search, p.Title, p.Description, p.Tags) &&
			matchesChoice(category, p.Category)
	})
}

// photoCategories collects the distinct categories present in the list,
// preserving first-seen order.
func photoCategories(photos []store.Photo) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range photos {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// List handles GET /admin/photos.
func (h *PhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	photos, err := h.queries.ListPhotos(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list photos", "error", err)
		return
	}

	filtered := filterPhotos(photos, search, category)

	h.render(w, r, "admin/photos_list", "Gallery Photos", PhotosListData{
		Photos:      filtered,
		TotalPhotos: len(filtered),
		Search:      search,
		Category:    category,
		Categories:  photoCategories(photos),
	})
}

// PhotoFormData holds data for the photo form template.
type PhotoFormData struct {
	Photo      *store.Photo
	Statuses   []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// NewForm handles GET /admin/photos/new.
func (h *PhotosHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/photos_form", "New Photo", PhotoFormData{
		Statuses:   PhotoStatuses,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	})
}

type photoForm struct {
	title       string
	description string
	imageURL    string
	category    string
	tags        string
	status      string
}

func parsePhotoForm(r *http.Request) photoForm {
	f := photoForm{
		title:       strings.TrimSpace(r.FormValue("title")),
		description: strings.TrimSpace(r.FormValue("description")),
		imageURL:    strings.TrimSpace(r.FormValue("image_url")),
		category:    strings.TrimSpace(r.FormValue("category")),
		tags:        util.JoinList(util.SplitList(r.FormValue("tags"))),
		status:      r.FormValue("status"),
	}
	if f.status == "" {
		f.status = PhotoStatusActive
	}
	return f
}

func (f photoForm) values() map[string]string {
	return map[string]string{
		"title":       f.title,
		"description": f.description,
		"image_url":   f.imageURL,
		"category":    f.category,
		"tags":        f.tags,
		"status":      f.status,
	}
}

func (f photoForm) validate() map[string]string {
	errs := make(map[string]string)
	if f.title == "" {
		errs["title"] = "Title is required"
	}
	if f.imageURL == "" {
		errs["image_url"] = "Image URL is required"
	}
	if !validChoice(f.status, PhotoStatuses) {
		errs["status"] = "Invalid status"
	}
	return errs
}

// Create handles POST /admin/photos.
func (h *PhotosHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminPhotosNew) {
		return
	}

	f := parsePhotoForm(r)
	if errs := f.validate(); len(errs) > 0 {
		h.render(w, r, "admin/photos_form", "New Photo", PhotoFormData{
			Statuses:   PhotoStatuses,
			Errors:     errs,
			FormValues: f.values(),
		})
		return
	}

	now := time.Now()
	photo, err := h.queries.CreatePhoto(r.Context(), store.CreatePhotoParams{
		Title:       f.title,
		Description: f.description,
		ImageURL:    f.imageURL,
		Category:    f.category,
		Tags:        f.tags,
		Status:      f.status,
		UploadedBy:  sql.NullInt64{Int64: middleware.GetUserID(r), Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create photo", "error", err)
		flashError(w, r, h.renderer, redirectAdminPhotosNew, "Error creating photo")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Photo created", &userID, clientIP(r), map[string]any{"photo_id": photo.ID, "title": photo.Title})
	flashSuccess(w, r, h.renderer, redirectAdminPhotos, "Photo created successfully")
}

// EditForm handles GET /admin/photos/{id}.
func (h *PhotosHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPhotos, "Invalid photo ID")
		return
	}

	photo, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminPhotos, "photo", id,
		func(id int64) (store.Photo, error) { return h.queries.GetPhotoByID(r.Context(), id) })
	if !ok {
		return
	}

	h.render(w, r, "admin/photos_form", "Edit Photo", PhotoFormData{
		Photo:    &photo,
		Statuses: PhotoStatuses,
		Errors:   make(map[string]string),
		FormValues: map[string]string{
			"title":       photo.Title,
			"description": photo.Description,
			"image_url":   photo.ImageURL,
			"category":    photo.Category,
			"tags":        photo.Tags,
			"status":      photo.Status,
		},
		IsEdit: true,
	})
}

// Update handles POST /admin/photos/{id}.
func (h *PhotosHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPhotos, "Invalid photo ID")
		return
	}

	photo, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminPhotos, "photo", id,
		func(id int64) (store.Photo, error) { return h.queries.GetPhotoByID(r.Context(), id) })
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminPhotosID, id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	f := parsePhotoForm(r)
	if errs := f.validate(); len(errs) > 0 {
		h.render(w, r, "admin/photos_form", "Edit Photo", PhotoFormData{
			Photo:      &photo,
			Statuses:   PhotoStatuses,
			Errors:     errs,
			FormValues: f.values(),
			IsEdit:     true,
		})
		return
	}

	if _, err := h.queries.UpdatePhoto(r.Context(), store.UpdatePhotoParams{
		ID:          id,
		Title:       f.title,
		Description: f.description,
		ImageURL:    f.imageURL,
		Category:    f.category,
		Tags:        f.tags,
		Status:      f.status,
		UpdatedAt:   time.Now(),
	}); err != nil {
		slog.Error("failed to update photo", "error", err, "photo_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating photo")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Photo updated", &userID, clientIP(r), map[string]any{"photo_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminPhotos, "Photo updated successfully")
}

// Delete handles POST /admin/photos/{id}/delete.
func (h *PhotosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPhotos, "Invalid photo ID")
		return
	}

	if err := h.queries.DeletePhoto(r.Context(), id); err != nil {
		slog.Error("failed to delete photo", "error", err, "photo_id", id)
		flashError(w, r, h.renderer, redirectAdminPhotos, "Error deleting photo")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Photo deleted", &userID, clientIP(r), map[string]any{"photo_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminPhotos, "Photo deleted")
}

func (h *PhotosHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
