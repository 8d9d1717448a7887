// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
)

// ContactsHandler handles contact inbox routes.
type ContactsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewContactsHandler creates a new ContactsHandler.
func NewContactsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *ContactsHandler {
	return &ContactsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// ContactsListData holds data for the contacts list template.
type ContactsListData struct {
	Contacts   []store.Contact
	Total      int
	NewCount   int64
	Search     string
	Status     string
	Priority   string
	Statuses   []string
	Priorities []string
}

// filterContacts applies the list filters in memory. Search matches name,
// email, subject, and the message body.
func filterContacts(contacts []store.Contact, search, status, priority string) []store.Contact {
	return filterSlice(contacts, func(c store.Contact) bool {
		return matchesSearch(search, c.Name, c.Email, c.Subject, c.Message) &&
			matchesChoice(status, c.Status) &&
			matchesChoice(priority, c.Priority)
	})
}

// List handles GET /admin/contacts.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	priority := r.URL.Query().Get("priority")

	contacts, err := h.queries.ListContacts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list contacts", "error", err)
		return
	}

	newCount, err := h.queries.CountContactsByStatus(r.Context(), ContactStatusNew)
	if err != nil {
		slog.Error("failed to count new contacts", "error", err)
	}

	filtered := filterContacts(contacts, search, status, priority)

	h.render(w, r, "admin/contacts_list", "Contact Inbox", ContactsListData{
		Contacts:   filtered,
		Total:      len(filtered),
		NewCount:   newCount,
		Search:     search,
		Status:     status,
		Priority:   priority,
		Statuses:   ContactStatuses,
		Priorities: ContactPriorities,
	})
}

// ContactDetailData holds data for the contact detail template.
type ContactDetailData struct {
	Contact    store.Contact
	Statuses   []string
	Priorities []string
}

// Detail handles GET /admin/contacts/{id}.
func (h *ContactsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminContacts, "Invalid contact ID")
		return
	}

	contact, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminContacts, "contact", id,
		func(id int64) (store.Contact, error) { return h.queries.GetContactByID(r.Context(), id) })
	if !ok {
		return
	}

	h.render(w, r, "admin/contacts_detail", "Contact: "+contact.Subject, ContactDetailData{
		Contact:    contact,
		Statuses:   ContactStatuses,
		Priorities: ContactPriorities,
	})
}

// UpdateStatus handles POST /admin/contacts/{id}/status. Moving a contact
// into the resolved state stamps resolved_at; moving it out clears it.
func (h *ContactsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminContacts, "Invalid contact ID")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminContacts) {
		return
	}

	status := r.FormValue("status")
	if !validChoice(status, ContactStatuses) {
		flashError(w, r, h.renderer, redirectAdminContacts, "Invalid status")
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminContacts, "contact", id,
		func(id int64) (store.Contact, error) { return h.queries.GetContactByID(r.Context(), id) }); !ok {
		return
	}

	var resolvedAt sql.NullTime
	if status == ContactStatusResolved {
		resolvedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	if err := h.queries.UpdateContactStatus(r.Context(), store.UpdateContactStatusParams{
		Status:     status,
		ResolvedAt: resolvedAt,
		UpdatedAt:  time.Now(),
		ID:         id,
	}); err != nil {
		slog.Error("failed to update contact status", "error", err, "contact_id", id)
		flashError(w, r, h.renderer, redirectAdminContacts, "Error updating contact")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Contact status changed", &userID, clientIP(r), map[string]any{"contact_id": id, "status": status})
	flashSuccess(w, r, h.renderer, redirectAdminContacts, "Contact marked "+status)
}

// UpdatePriority handles POST /admin/contacts/{id}/priority.
func (h *ContactsHandler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminContacts, "Invalid contact ID")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminContacts) {
		return
	}

	priority := r.FormValue("priority")
	if !validChoice(priority, ContactPriorities) {
		flashError(w, r, h.renderer, redirectAdminContacts, "Invalid priority")
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminContacts, "contact", id,
		func(id int64) (store.Contact, error) { return h.queries.GetContactByID(r.Context(), id) }); !ok {
		return
	}

	if err := h.queries.UpdateContactPriority(r.Context(), store.UpdateContactPriorityParams{
		Priority:  priority,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		slog.Error("failed to update contact priority", "error", err, "contact_id", id)
		flashError(w, r, h.renderer, redirectAdminContacts, "Error updating contact")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Contact priority changed", &userID, clientIP(r), map[string]any{"contact_id": id, "priority": priority})
	flashSuccess(w, r, h.renderer, redirectAdminContacts, "Contact priority set to "+priority)
}

// Delete handles POST /admin/contacts/{id}/delete.
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminContacts, "Invalid contact ID")
		return
	}

	if err := h.queries.DeleteContact(r.Context(), id); err != nil {
		slog.Error("failed to delete contact", "error", err, "contact_id", id)
		flashError(w, r, h.renderer, redirectAdminContacts, "Error deleting contact")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Contact deleted", &userID, clientIP(r), map[string]any{"contact_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminContacts, "Contact deleted")
}

func (h *ContactsHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
