// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const photoColumns = `id, title, description, image_url, category, tags, status,
	uploaded_by, created_at, updated_at`

func scanPhotoRow(s interface{ Scan(...any) error }) (Photo, error) {
	var p Photo
	err := s.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Category,
		&p.Tags, &p.Status, &p.UploadedBy, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) listPhotos(ctx context.Context, query string, args ...any) ([]Photo, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		p, err := scanPhotoRow(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// CreatePhotoParams holds the fields for CreatePhoto.
type CreatePhotoParams struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Tags        string
	Status      string
	UploadedBy  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePhoto inserts a new gallery photo and returns the created row.
func (q *Queries) CreatePhoto(ctx context.Context, arg CreatePhotoParams) (Photo, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO photos (title, description, image_url, category, tags, status,
			uploaded_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+photoColumns,
		arg.Title, arg.Description, arg.ImageURL, arg.Category, arg.Tags,
		arg.Status, arg.UploadedBy, arg.CreatedAt, arg.UpdatedAt)
	return scanPhotoRow(row)
}

// GetPhotoByID returns the photo with the given ID.
func (q *Queries) GetPhotoByID(ctx context.Context, id int64) (Photo, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = ?`, id)
	return scanPhotoRow(row)
}

// ListPhotos returns all photos, newest first.
func (q *Queries) ListPhotos(ctx context.Context) ([]Photo, error) {
	return q.listPhotos(ctx, `SELECT `+photoColumns+` FROM photos ORDER BY created_at DESC`)
}

// ListActivePhotos returns active photos, newest first.
func (q *Queries) ListActivePhotos(ctx context.Context) ([]Photo, error) {
	return q.listPhotos(ctx, `
		SELECT `+photoColumns+` FROM photos
		WHERE status = 'active'
		ORDER BY created_at DESC`)
}

// UpdatePhotoParams holds the fields for UpdatePhoto.
type UpdatePhotoParams struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Category    string
	Tags        string
	Status      string
	UpdatedAt   time.Time
}

// UpdatePhoto replaces a photo's content fields and returns the updated row.
func (q *Queries) UpdatePhoto(ctx context.Context, arg UpdatePhotoParams) (Photo, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE photos
		SET title = ?, description = ?, image_url = ?, category = ?, tags = ?,
			status = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+photoColumns,
		arg.Title, arg.Description, arg.ImageURL, arg.Category, arg.Tags,
		arg.Status, arg.UpdatedAt, arg.ID)
	return scanPhotoRow(row)
}

// DeletePhoto deletes a photo by ID.
func (q *Queries) DeletePhoto(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	return err
}

// CountPhotos returns the total number of photos.
func (q *Queries) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`).Scan(&count)
	return count, err
}
