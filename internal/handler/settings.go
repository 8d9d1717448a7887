// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
)

// SettingsHandler handles the site settings routes.
type SettingsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *SettingsHandler {
	return &SettingsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// SettingsData holds data for the settings template.
type SettingsData struct {
	Settings []store.Setting
}

// Form handles GET /admin/settings.
func (h *SettingsHandler) Form(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list settings", "error", err)
		return
	}

	h.render(w, r, "admin/settings", "Site Settings", SettingsData{Settings: settings})
}

// Update handles POST /admin/settings. Each known setting key is read from
// the form and upserted; keys absent from the form are left untouched.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminSettings) {
		return
	}

	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list settings", "error", err)
		return
	}

	userID := middleware.GetUserID(r)
	now := time.Now()
	var changed []string

	for _, s := range settings {
		if !r.Form.Has(s.Key) {
			continue
		}
		value := strings.TrimSpace(r.FormValue(s.Key))
		if value == s.Value {
			continue
		}
		if err := h.queries.UpsertSetting(r.Context(), store.UpsertSettingParams{
			Key:         s.Key,
			Value:       value,
			Description: s.Description,
			UpdatedBy:   sql.NullInt64{Int64: userID, Valid: true},
			UpdatedAt:   now,
		}); err != nil {
			slog.Error("failed to save setting", "error", err, "key", s.Key)
			flashError(w, r, h.renderer, redirectAdminSettings, "Error saving settings")
			return
		}
		changed = append(changed, s.Key)
	}

	if len(changed) == 0 {
		flashSuccess(w, r, h.renderer, redirectAdminSettings, "No changes to save")
		return
	}

	_ = h.audit.LogConfig(r.Context(), service.AuditLevelInfo, "Settings updated", &userID, clientIP(r), map[string]any{"keys": strings.Join(changed, ",")})
	flashSuccess(w, r, h.renderer, redirectAdminSettings, "Settings saved")
}

func (h *SettingsHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
