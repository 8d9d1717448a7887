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
	"github.com/aisolutions/website/internal/util"
)

// EventsHandler handles company event management routes.
type EventsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *EventsHandler {
	return &EventsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// EventsListData holds data for the events list template.
type EventsListData struct {
	Events      []store.Event
	TotalEvents int
	Search      string
	Status      string
	Statuses    []string
}

// filterEvents applies the list filters in memory. Search matches title,
// description, and location.
func filterEvents(events []store.Event, search, status string) []store.Event {
	return filterSlice(events, func(e store.Event) bool {
		return matchesSearch(search, e.Title, e.Description, e.Location) &&
			matchesChoice(status, e.Status)
	})
}

// List handles GET /admin/events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	filtered := filterEvents(events, search, status)

	h.render(w, r, "admin/events_list", "Events", EventsListData{
		Events:      filtered,
		TotalEvents: len(filtered),
		Search:      search,
		Status:      status,
		Statuses:    EventStatuses,
	})
}

// EventFormData holds data for the event form template.
type EventFormData struct {
	Event      *store.Event
	Statuses   []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// NewForm handles GET /admin/events/new.
func (h *EventsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/events_form", "New Event", EventFormData{
		Statuses:   EventStatuses,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	})
}

type eventForm struct {
	title        string
	description  string
	eventDate    string
	eventTime    string
	location     string
	eventType    string
	highlights   string
	imageURL     string
	maxAttendees int64
	attendees    int64
	status       string
}

func parseEventForm(r *http.Request) eventForm {
	maxAttendees, _ := strconv.ParseInt(r.FormValue("max_attendees"), 10, 64)
	attendees, _ := strconv.ParseInt(r.FormValue("current_attendees"), 10, 64)

	f := eventForm{
		title:        strings.TrimSpace(r.FormValue("title")),
		description:  strings.TrimSpace(r.FormValue("description")),
		eventDate:    strings.TrimSpace(r.FormValue("event_date")),
		eventTime:    strings.TrimSpace(r.FormValue("event_time")),
		location:     strings.TrimSpace(r.FormValue("location")),
		eventType:    strings.TrimSpace(r.FormValue("event_type")),
		highlights:   util.JoinList(util.SplitList(r.FormValue("highlights"))),
		imageURL:     strings.TrimSpace(r.FormValue("image_url")),
		maxAttendees: maxAttendees,
		attendees:    attendees,
		status:       r.FormValue("status"),
	}
	if f.status == "" {
		f.status = EventStatusUpcoming
	}
	return f
}

func (f eventForm) values() map[string]string {
	return map[string]string{
		"title":             f.title,
		"description":       f.description,
		"event_date":        f.eventDate,
		"event_time":        f.eventTime,
		"location":          f.location,
		"event_type":        f.eventType,
		"highlights":        f.highlights,
		"image_url":         f.imageURL,
		"max_attendees":     strconv.FormatInt(f.maxAttendees, 10),
		"current_attendees": strconv.FormatInt(f.attendees, 10),
		"status":            f.status,
	}
}

func (f eventForm) validate() map[string]string {
	errs := make(map[string]string)
	if f.title == "" {
		errs["title"] = "Title is required"
	}
	if f.eventDate == "" {
		errs["event_date"] = "Event date is required"
	} else if _, err := time.Parse("2006-01-02", f.eventDate); err != nil {
		errs["event_date"] = "Event date must be in YYYY-MM-DD format"
	}
	if !validChoice(f.status, EventStatuses) {
		errs["status"] = "Invalid status"
	}
	if f.maxAttendees < 0 {
		errs["max_attendees"] = "Max attendees cannot be negative"
	}
	return errs
}

// Create handles POST /admin/events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEventsNew) {
		return
	}

	f := parseEventForm(r)
	if errs := f.validate(); len(errs) > 0 {
		h.render(w, r, "admin/events_form", "New Event", EventFormData{
			Statuses:   EventStatuses,
			Errors:     errs,
			FormValues: f.values(),
		})
		return
	}

	now := time.Now()
	event, err := h.queries.CreateEvent(r.Context(), store.CreateEventParams{
		Title:            f.title,
		Description:      f.description,
		EventDate:        f.eventDate,
		EventTime:        f.eventTime,
		Location:         f.location,
		EventType:        f.eventType,
		Highlights:       f.highlights,
		ImageURL:         f.imageURL,
		MaxAttendees:     f.maxAttendees,
		CurrentAttendees: f.attendees,
		Status:           f.status,
		CreatedBy:        sql.NullInt64{Int64: middleware.GetUserID(r), Valid: true},
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		slog.Error("failed to create event", "error", err)
		flashError(w, r, h.renderer, redirectAdminEventsNew, "Error creating event")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Event created", &userID, clientIP(r), map[string]any{"event_id": event.ID, "title": event.Title})
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Event created successfully")
}

// EditForm handles GET /admin/events/{id}.
func (h *EventsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Invalid event ID")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminEvents, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	h.render(w, r, "admin/events_form", "Edit Event", EventFormData{
		Event:    &event,
		Statuses: EventStatuses,
		Errors:   make(map[string]string),
		FormValues: map[string]string{
			"title":             event.Title,
			"description":       event.Description,
			"event_date":        event.EventDate,
			"event_time":        event.EventTime,
			"location":          event.Location,
			"event_type":        event.EventType,
			"highlights":        event.Highlights,
			"image_url":         event.ImageURL,
			"max_attendees":     strconv.FormatInt(event.MaxAttendees, 10),
			"current_attendees": strconv.FormatInt(event.CurrentAttendees, 10),
			"status":            event.Status,
		},
		IsEdit: true,
	})
}

// Update handles POST /admin/events/{id}.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Invalid event ID")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminEvents, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminEventsID, id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	f := parseEventForm(r)
	if errs := f.validate(); len(errs) > 0 {
		h.render(w, r, "admin/events_form", "Edit Event", EventFormData{
			Event:      &event,
			Statuses:   EventStatuses,
			Errors:     errs,
			FormValues: f.values(),
			IsEdit:     true,
		})
		return
	}

	if _, err := h.queries.UpdateEvent(r.Context(), store.UpdateEventParams{
		ID:               id,
		Title:            f.title,
		Description:      f.description,
		EventDate:        f.eventDate,
		EventTime:        f.eventTime,
		Location:         f.location,
		EventType:        f.eventType,
		Highlights:       f.highlights,
		ImageURL:         f.imageURL,
		MaxAttendees:     f.maxAttendees,
		CurrentAttendees: f.attendees,
		Status:           f.status,
		UpdatedAt:        time.Now(),
	}); err != nil {
		slog.Error("failed to update event", "error", err, "event_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating event")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Event updated", &userID, clientIP(r), map[string]any{"event_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Event updated successfully")
}

// Delete handles POST /admin/events/{id}/delete.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminEvents, "Invalid event ID")
		return
	}

	if err := h.queries.DeleteEvent(r.Context(), id); err != nil {
		slog.Error("failed to delete event", "error", err, "event_id", id)
		flashError(w, r, h.renderer, redirectAdminEvents, "Error deleting event")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Event deleted", &userID, clientIP(r), map[string]any{"event_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Event deleted")
}

func (h *EventsHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
