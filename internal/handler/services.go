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

// ServicesHandler handles portfolio service management routes.
type ServicesHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewServicesHandler creates a new ServicesHandler.
func NewServicesHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *ServicesHandler {
	return &ServicesHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// ServicesListData holds data for the services list template.
type ServicesListData struct {
	Services      []store.Service
	TotalServices int
	Search        string
	Category      string
	Status        string
	Statuses      []string
}

// filterServices applies the list filters in memory. Search matches title,
// description, and technologies.
func filterServices(services []store.Service, search, category, status string) []store.Service {
	return filterSlice(services, func(s store.Service) bool {
		return matchesSearch(search, s.Title, s.Description, s.Technologies) &&
			matchesChoice(category, s.Category) &&
			matchesChoice(status, s.Status)
	})
}

// List handles GET /admin/services.
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")

	services, err := h.queries.ListServices(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list services", "error", err)
		return
	}

	filtered := filterServices(services, search, category, status)

	h.render(w, r, "admin/services_list", "Portfolio Services", ServicesListData{
		Services:      filtered,
		TotalServices: len(filtered),
		Search:        search,
		Category:      category,
		Status:        status,
		Statuses:      ServiceStatuses,
	})
}

// ServiceFormData holds data for the service form template.
type ServiceFormData struct {
	Service    *store.Service
	Statuses   []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// NewForm handles GET /admin/services/new.
func (h *ServicesHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/services_form", "New Service", ServiceFormData{
		Statuses:   ServiceStatuses,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	})
}

type serviceForm struct {
	title        string
	description  string
	category     string
	technologies string
	features     string
	imageURL     string
	demoURL      string
	githubURL    string
	priceRange   string
	status       string
}

func parseServiceForm(r *http.Request) serviceForm {
	f := serviceForm{
		title:        strings.TrimSpace(r.FormValue("title")),
		description:  strings.TrimSpace(r.FormValue("description")),
		category:     strings.TrimSpace(r.FormValue("category")),
		technologies: util.JoinList(util.SplitList(r.FormValue("technologies"))),
		features:     util.JoinList(util.SplitList(r.FormValue("features"))),
		imageURL:     strings.TrimSpace(r.FormValue("image_url")),
		demoURL:      strings.TrimSpace(r.FormValue("demo_url")),
		githubURL:    strings.TrimSpace(r.FormValue("github_url")),
		priceRange:   strings.TrimSpace(r.FormValue("price_range")),
		status:       r.FormValue("status"),
	}
	if f.status == "" {
		f.status = ServiceStatusActive
	}
	return f
}

func (f serviceForm) values() map[string]string {
	return map[string]string{
		"title":        f.title,
		"description":  f.description,
		"category":     f.category,
		"technologies": f.technologies,
		"features":     f.features,
		"image_url":    f.imageURL,
		"demo_url":     f.demoURL,
		"github_url":   f.githubURL,
		"price_range":  f.priceRange,
		"status":       f.status,
	}
}

func (f serviceForm) validate() map[string]string {
	errs := make(map[string]string)
	if f.title == "" {
		errs["title"] = "Title is required"
	}
	if f.description == "" {
		errs["description"] = "Description is required"
	}
	if !validChoice(f.status, ServiceStatuses) {
		errs["status"] = "Invalid status"
	}
	return errs
}

// Create handles POST /admin/services.
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminServicesNew) {
		return
	}

	f := parseServiceForm(r)
	if errs := f.validate(); len(errs) > 0 {
		h.render(w, r, "admin/services_form", "New Service", ServiceFormData{
			Statuses:   ServiceStatuses,
			Errors:     errs,
			FormValues: f.values(),
		})
		return
	}

	now := time.Now()
	svc, err := h.queries.CreateService(r.Context(), store.CreateServiceParams{
		Title:        f.title,
		Description:  f.description,
		Category:     f.category,
		Technologies: f.technologies,
		Features:     f.features,
		ImageURL:     f.imageURL,
		DemoURL:      f.demoURL,
		GithubURL:    f.githubURL,
		PriceRange:   f.priceRange,
		Status:       f.status,
		CreatedBy:    sql.NullInt64{Int64: middleware.GetUserID(r), Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		slog.Error("failed to create service", "error", err)
		flashError(w, r, h.renderer, redirectAdminServicesNew, "Error creating service")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Service created", &userID, clientIP(r), map[string]any{"service_id": svc.ID, "title": svc.Title})
	flashSuccess(w, r, h.renderer, redirectAdminServices, "Service created successfully")
}

// EditForm handles GET /admin/services/{id}.
func (h *ServicesHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminServices, "Invalid service ID")
		return
	}

	svc, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminServices, "service", id,
		func(id int64) (store.Service, error) { return h.queries.GetServiceByID(r.Context(), id) })
	if !ok {
		return
	}

	h.render(w, r, "admin/services_form", "Edit Service", ServiceFormData{
		Service:  &svc,
		Statuses: ServiceStatuses,
		Errors:   make(map[string]string),
		FormValues: map[string]string{
			"title":        svc.Title,
			"description":  svc.Description,
			"category":     svc.Category,
			"technologies": svc.Technologies,
			"features":     svc.Features,
			"image_url":    svc.ImageURL,
			"demo_url":     svc.DemoURL,
			"github_url":   svc.GithubURL,
			"price_range":  svc.PriceRange,
			"status":       svc.Status,
		},
		IsEdit: true,
	})
}

// Update handles POST /admin/services/{id}.
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminServices, "Invalid service ID")
		return
	}

	svc, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminServices, "service", id,
		func(id int64) (store.Service, error) { return h.queries.GetServiceByID(r.Context(), id) })
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminServicesID, id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	f := parseServiceForm(r)
	if errs := f.validate(); len(errs) > 0 {
		h.render(w, r, "admin/services_form", "Edit Service", ServiceFormData{
			Service:    &svc,
			Statuses:   ServiceStatuses,
			Errors:     errs,
			FormValues: f.values(),
			IsEdit:     true,
		})
		return
	}

	if _, err := h.queries.UpdateService(r.Context(), store.UpdateServiceParams{
		ID:           id,
		Title:        f.title,
		Description:  f.description,
		Category:     f.category,
		Technologies: f.technologies,
		Features:     f.features,
		ImageURL:     f.imageURL,
		DemoURL:      f.demoURL,
		GithubURL:    f.githubURL,
		PriceRange:   f.priceRange,
		Status:       f.status,
		UpdatedAt:    time.Now(),
	}); err != nil {
		slog.Error("failed to update service", "error", err, "service_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating service")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Service updated", &userID, clientIP(r), map[string]any{"service_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminServices, "Service updated successfully")
}

// Delete handles POST /admin/services/{id}/delete.
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminServices, "Invalid service ID")
		return
	}

	if err := h.queries.DeleteService(r.Context(), id); err != nil {
		slog.Error("failed to delete service", "error", err, "service_id", id)
		flashError(w, r, h.renderer, redirectAdminServices, "Error deleting service")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Service deleted", &userID, clientIP(r), map[string]any{"service_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminServices, "Service deleted")
}

func (h *ServicesHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
