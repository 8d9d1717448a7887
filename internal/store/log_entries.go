// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const logEntryColumns = `id, level, category, message, user_id, ip_address, metadata, created_at`

func scanLogEntryRow(s interface{ Scan(...any) error }) (LogEntry, error) {
	var e LogEntry
	err := s.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.UserID,
		&e.IPAddress, &e.Metadata, &e.CreatedAt)
	return e, err
}

// CreateLogEntryParams holds the fields for CreateLogEntry.
type CreateLogEntryParams struct {
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	IPAddress string
	Metadata  string
	CreatedAt time.Time
}

// CreateLogEntry inserts an audit log record.
func (q *Queries) CreateLogEntry(ctx context.Context, arg CreateLogEntryParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO log_entries (level, category, message, user_id, ip_address,
			metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.UserID, arg.IPAddress,
		arg.Metadata, arg.CreatedAt)
	return err
}

// ListLogEntriesParams holds the fields for ListLogEntries.
type ListLogEntriesParams struct {
	Limit  int64
	Offset int64
}

// ListLogEntries returns audit log records, newest first.
func (q *Queries) ListLogEntries(ctx context.Context, arg ListLogEntriesParams) ([]LogEntry, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+logEntryColumns+` FROM log_entries
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		e, err := scanLogEntryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountLogEntries returns the total number of audit log records.
func (q *Queries) CountLogEntries(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log_entries`).Scan(&count)
	return count, err
}

// DeleteLogEntriesBefore deletes audit log records created before the cutoff.
func (q *Queries) DeleteLogEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM log_entries WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
