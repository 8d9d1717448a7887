// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const contactColumns = `id, name, email, phone, subject, message, priority, status,
	assigned_to, resolved_at, created_at, updated_at`

func scanContactRow(s interface{ Scan(...any) error }) (Contact, error) {
	var c Contact
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
		&c.Priority, &c.Status, &c.AssignedTo, &c.ResolvedAt, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (q *Queries) listContacts(ctx context.Context, query string, args ...any) ([]Contact, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		c, err := scanContactRow(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// CreateContactParams holds the fields for CreateContact.
type CreateContactParams struct {
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Priority  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateContact inserts a new contact submission and returns the created row.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (Contact, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO contacts (name, email, phone, subject, message, priority, status,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+contactColumns,
		arg.Name, arg.Email, arg.Phone, arg.Subject, arg.Message, arg.Priority,
		arg.Status, arg.CreatedAt, arg.UpdatedAt)
	return scanContactRow(row)
}

// GetContactByID returns the contact with the given ID.
func (q *Queries) GetContactByID(ctx context.Context, id int64) (Contact, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	return scanContactRow(row)
}

// ListContacts returns all contact submissions, newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]Contact, error) {
	return q.listContacts(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
}

// UpdateContactParams holds the fields for UpdateContact.
type UpdateContactParams struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	Priority   string
	Status     string
	AssignedTo sql.NullInt64
	ResolvedAt sql.NullTime
	UpdatedAt  time.Time
}

// UpdateContact replaces a contact's fields and returns the updated row.
func (q *Queries) UpdateContact(ctx context.Context, arg UpdateContactParams) (Contact, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE contacts
		SET name = ?, email = ?, phone = ?, subject = ?, message = ?, priority = ?,
			status = ?, assigned_to = ?, resolved_at = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+contactColumns,
		arg.Name, arg.Email, arg.Phone, arg.Subject, arg.Message, arg.Priority,
		arg.Status, arg.AssignedTo, arg.ResolvedAt, arg.UpdatedAt, arg.ID)
	return scanContactRow(row)
}

// UpdateContactStatusParams holds the fields for UpdateContactStatus.
type UpdateContactStatusParams struct {
	Status     string
	ResolvedAt sql.NullTime
	UpdatedAt  time.Time
	ID         int64
}

// UpdateContactStatus changes only a contact's status and resolution time.
func (q *Queries) UpdateContactStatus(ctx context.Context, arg UpdateContactStatusParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE contacts SET status = ?, resolved_at = ?, updated_at = ? WHERE id = ?`,
		arg.Status, arg.ResolvedAt, arg.UpdatedAt, arg.ID)
	return err
}

// UpdateContactPriorityParams holds the fields for UpdateContactPriority.
type UpdateContactPriorityParams struct {
	Priority  string
	UpdatedAt time.Time
	ID        int64
}

// UpdateContactPriority changes only a contact's priority.
func (q *Queries) UpdateContactPriority(ctx context.Context, arg UpdateContactPriorityParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE contacts SET priority = ?, updated_at = ? WHERE id = ?`,
		arg.Priority, arg.UpdatedAt, arg.ID)
	return err
}

// DeleteContact deletes a contact by ID.
func (q *Queries) DeleteContact(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	return err
}

// CountContacts returns the total number of contact submissions.
func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

// CountContactsByStatus returns the number of contacts with the given status.
func (q *Queries) CountContactsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE status = ?`, status).Scan(&count)
	return count, err
}
