// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const testimonialColumns = `id, name, role, company, project, rating, text,
	image_url, featured, status, created_at, updated_at`

func scanTestimonialRow(s interface{ Scan(...any) error }) (Testimonial, error) {
	var t Testimonial
	err := s.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.Project, &t.Rating,
		&t.Text, &t.ImageURL, &t.Featured, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) listTestimonials(ctx context.Context, query string, args ...any) ([]Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []Testimonial
	for rows.Next() {
		t, err := scanTestimonialRow(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// CreateTestimonialParams holds the fields for CreateTestimonial.
type CreateTestimonialParams struct {
	Name      string
	Role      string
	Company   string
	Project   string
	Rating    int64
	Text      string
	ImageURL  string
	Featured  bool
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTestimonial inserts a new testimonial and returns the created row.
func (q *Queries) CreateTestimonial(ctx context.Context, arg CreateTestimonialParams) (Testimonial, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (name, role, company, project, rating, text,
			image_url, featured, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+testimonialColumns,
		arg.Name, arg.Role, arg.Company, arg.Project, arg.Rating, arg.Text,
		arg.ImageURL, arg.Featured, arg.Status, arg.CreatedAt, arg.UpdatedAt)
	return scanTestimonialRow(row)
}

// GetTestimonialByID returns the testimonial with the given ID.
func (q *Queries) GetTestimonialByID(ctx context.Context, id int64) (Testimonial, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id)
	return scanTestimonialRow(row)
}

// ListTestimonials returns all testimonials, newest first.
func (q *Queries) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return q.listTestimonials(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
}

// ListApprovedTestimonials returns approved testimonials, featured first then newest.
func (q *Queries) ListApprovedTestimonials(ctx context.Context) ([]Testimonial, error) {
	return q.listTestimonials(ctx, `
		SELECT `+testimonialColumns+` FROM testimonials
		WHERE status = 'approved'
		ORDER BY featured DESC, created_at DESC`)
}

// UpdateTestimonialParams holds the fields for UpdateTestimonial.
type UpdateTestimonialParams struct {
	ID        int64
	Name      string
	Role      string
	Company   string
	Project   string
	Rating    int64
	Text      string
	ImageURL  string
	Featured  bool
	Status    string
	UpdatedAt time.Time
}

// UpdateTestimonial replaces a testimonial's content fields and returns the updated row.
func (q *Queries) UpdateTestimonial(ctx context.Context, arg UpdateTestimonialParams) (Testimonial, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE testimonials
		SET name = ?, role = ?, company = ?, project = ?, rating = ?, text = ?,
			image_url = ?, featured = ?, status = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+testimonialColumns,
		arg.Name, arg.Role, arg.Company, arg.Project, arg.Rating, arg.Text,
		arg.ImageURL, arg.Featured, arg.Status, arg.UpdatedAt, arg.ID)
	return scanTestimonialRow(row)
}

// UpdateTestimonialStatusParams holds the fields for UpdateTestimonialStatus.
type UpdateTestimonialStatusParams struct {
	Status    string
	UpdatedAt time.Time
	ID        int64
}

// UpdateTestimonialStatus changes only a testimonial's status.
func (q *Queries) UpdateTestimonialStatus(ctx context.Context, arg UpdateTestimonialStatusParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE testimonials SET status = ?, updated_at = ? WHERE id = ?`,
		arg.Status, arg.UpdatedAt, arg.ID)
	return err
}

// UpdateTestimonialFeaturedParams holds the fields for UpdateTestimonialFeatured.
type UpdateTestimonialFeaturedParams struct {
	Featured  bool
	UpdatedAt time.Time
	ID        int64
}

// UpdateTestimonialFeatured changes only a testimonial's featured flag.
func (q *Queries) UpdateTestimonialFeatured(ctx context.Context, arg UpdateTestimonialFeaturedParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE testimonials SET featured = ?, updated_at = ? WHERE id = ?`,
		arg.Featured, arg.UpdatedAt, arg.ID)
	return err
}

// DeleteTestimonial deletes a testimonial by ID.
func (q *Queries) DeleteTestimonial(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

// CountTestimonials returns the total number of testimonials.
func (q *Queries) CountTestimonials(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count)
	return count, err
}

// CountTestimonialsByStatus returns the number of testimonials with the given status.
func (q *Queries) CountTestimonialsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM testimonials WHERE status = ?`, status).Scan(&count)
	return count, err
}
