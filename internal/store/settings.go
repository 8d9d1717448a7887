// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const settingColumns = `id, key, value, description, updated_by, updated_at`

func scanSettingRow(s interface{ Scan(...any) error }) (Setting, error) {
	var st Setting
	err := s.Scan(&st.ID, &st.Key, &st.Value, &st.Description, &st.UpdatedBy, &st.UpdatedAt)
	return st, err
}

// GetSetting returns the setting with the given key.
func (q *Queries) GetSetting(ctx context.Context, key string) (Setting, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE key = ?`, key)
	return scanSettingRow(row)
}

// ListSettings returns all settings ordered by key.
func (q *Queries) ListSettings(ctx context.Context) ([]Setting, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+settingColumns+` FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		st, err := scanSettingRow(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, st)
	}
	return settings, rows.Err()
}

// UpsertSettingParams holds the fields for UpsertSetting.
type UpsertSettingParams struct {
	Key         string
	Value       string
	Description string
	UpdatedBy   sql.NullInt64
	UpdatedAt   time.Time
}

// UpsertSetting inserts a setting or replaces its value if the key exists.
func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, description, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			description = excluded.description,
			updated_by = excluded.updated_by,
			updated_at = excluded.updated_at`,
		arg.Key, arg.Value, arg.Description, arg.UpdatedBy, arg.UpdatedAt)
	return err
}

// DeleteSetting deletes a setting by key.
func (q *Queries) DeleteSetting(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}
