// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const serviceColumns = `id, title, description, category, technologies, features,
	image_url, demo_url, github_url, price_range, status, created_by, created_at, updated_at`

func scanServiceRow(s interface{ Scan(...any) error }) (Service, error) {
	var sv Service
	err := s.Scan(&sv.ID, &sv.Title, &sv.Description, &sv.Category, &sv.Technologies,
		&sv.Features, &sv.ImageURL, &sv.DemoURL, &sv.GithubURL, &sv.PriceRange,
		&sv.Status, &sv.CreatedBy, &sv.CreatedAt, &sv.UpdatedAt)
	return sv, err
}

func (q *Queries) listServices(ctx context.Context, query string, args ...any) ([]Service, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []Service
	for rows.Next() {
		sv, err := scanServiceRow(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, sv)
	}
	return services, rows.Err()
}

// CreateServiceParams holds the fields for CreateService.
type CreateServiceParams struct {
	Title        string
	Description  string
	Category     string
	Technologies string
	Features     string
	ImageURL     string
	DemoURL      string
	GithubURL    string
	PriceRange   string
	Status       string
	CreatedBy    sql.NullInt64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateService inserts a new portfolio service and returns the created row.
func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (Service, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO services (title, description, category, technologies, features,
			image_url, demo_url, github_url, price_range, status, created_by,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+serviceColumns,
		arg.Title, arg.Description, arg.Category, arg.Technologies, arg.Features,
		arg.ImageURL, arg.DemoURL, arg.GithubURL, arg.PriceRange, arg.Status,
		arg.CreatedBy, arg.CreatedAt, arg.UpdatedAt)
	return scanServiceRow(row)
}

// GetServiceByID returns the service with the given ID.
func (q *Queries) GetServiceByID(ctx context.Context, id int64) (Service, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
	return scanServiceRow(row)
}

// ListServices returns all services, newest first.
func (q *Queries) ListServices(ctx context.Context) ([]Service, error) {
	return q.listServices(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC`)
}

// ListActiveServices returns active services, newest first.
func (q *Queries) ListActiveServices(ctx context.Context) ([]Service, error) {
	return q.listServices(ctx, `
		SELECT `+serviceColumns+` FROM services
		WHERE status = 'active'
		ORDER BY created_at DESC`)
}

// UpdateServiceParams holds the fields for UpdateService.
type UpdateServiceParams struct {
	ID           int64
	Title        string
	Description  string
	Category     string
	Technologies string
	Features     string
	ImageURL     string
	DemoURL      string
	GithubURL    string
	PriceRange   string
	Status       string
	UpdatedAt    time.Time
}

// UpdateService replaces a service's content fields and returns the updated row.
func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) (Service, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE services
		SET title = ?, description = ?, category = ?, technologies = ?, features = ?,
			image_url = ?, demo_url = ?, github_url = ?, price_range = ?, status = ?,
			updated_at = ?
		WHERE id = ?
		RETURNING `+serviceColumns,
		arg.Title, arg.Description, arg.Category, arg.Technologies, arg.Features,
		arg.ImageURL, arg.DemoURL, arg.GithubURL, arg.PriceRange, arg.Status,
		arg.UpdatedAt, arg.ID)
	return scanServiceRow(row)
}

// DeleteService deletes a service by ID.
func (q *Queries) DeleteService(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	return err
}

// CountServices returns the total number of services.
func (q *Queries) CountServices(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	return count, err
}
