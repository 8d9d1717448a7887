// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const eventColumns = `id, title, description, event_date, event_time, location,
	event_type, highlights, image_url, max_attendees, current_attendees, status,
	created_by, created_at, updated_at`

func scanEventRow(s interface{ Scan(...any) error }) (Event, error) {
	var e Event
	err := s.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.EventTime,
		&e.Location, &e.EventType, &e.Highlights, &e.ImageURL, &e.MaxAttendees,
		&e.CurrentAttendees, &e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (q *Queries) listEvents(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	Title            string
	Description      string
	EventDate        string
	EventTime        string
	Location         string
	EventType        string
	Highlights       string
	ImageURL         string
	MaxAttendees     int64
	CurrentAttendees int64
	Status           string
	CreatedBy        sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateEvent inserts a new event and returns the created row.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO events (title, description, event_date, event_time, location,
			event_type, highlights, image_url, max_attendees, current_attendees,
			status, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+eventColumns,
		arg.Title, arg.Description, arg.EventDate, arg.EventTime, arg.Location,
		arg.EventType, arg.Highlights, arg.ImageURL, arg.MaxAttendees,
		arg.CurrentAttendees, arg.Status, arg.CreatedBy, arg.CreatedAt, arg.UpdatedAt)
	return scanEventRow(row)
}

// GetEventByID returns the event with the given ID.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEventRow(row)
}

// ListEvents returns all events, newest first.
func (q *Queries) ListEvents(ctx context.Context) ([]Event, error) {
	return q.listEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
}

// ListEventsByStatus returns events with the given status, soonest event date first.
func (q *Queries) ListEventsByStatus(ctx context.Context, status string) ([]Event, error) {
	return q.listEvents(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE status = ?
		ORDER BY event_date`, status)
}

// UpdateEventParams holds the fields for UpdateEvent.
type UpdateEventParams struct {
	ID               int64
	Title            string
	Description      string
	EventDate        string
	EventTime        string
	Location         string
	EventType        string
	Highlights       string
	ImageURL         string
	MaxAttendees     int64
	CurrentAttendees int64
	Status           string
	UpdatedAt        time.Time
}

// UpdateEvent replaces an event's content fields and returns the updated row.
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, event_date = ?, event_time = ?, location = ?,
			event_type = ?, highlights = ?, image_url = ?, max_attendees = ?,
			current_attendees = ?, status = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+eventColumns,
		arg.Title, arg.Description, arg.EventDate, arg.EventTime, arg.Location,
		arg.EventType, arg.Highlights, arg.ImageURL, arg.MaxAttendees,
		arg.CurrentAttendees, arg.Status, arg.UpdatedAt, arg.ID)
	return scanEventRow(row)
}

// DeleteEvent deletes an event by ID.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

// CountEvents returns the total number of events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}
