// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const postColumns = `id, title, slug, excerpt, content, image_url, category, tags,
	status, author_id, published_at, created_at, updated_at`

func scanPostRow(s interface{ Scan(...any) error }) (Post, error) {
	var p Post
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.ImageURL,
		&p.Category, &p.Tags, &p.Status, &p.AuthorID, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) listPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CreatePostParams holds the fields for CreatePost.
type CreatePostParams struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    string
	Category    string
	Tags        string
	Status      string
	AuthorID    sql.NullInt64
	PublishedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePost inserts a new blog post and returns the created row.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, excerpt, content, image_url, category, tags,
			status, author_id, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, arg.ImageURL, arg.Category,
		arg.Tags, arg.Status, arg.AuthorID, arg.PublishedAt, arg.CreatedAt, arg.UpdatedAt)
	return scanPostRow(row)
}

// GetPostByID returns the post with the given ID.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPostRow(row)
}

// GetPublishedPostBySlug returns a published post by slug.
func (q *Queries) GetPublishedPostBySlug(ctx context.Context, slug string) (Post, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = ? AND status = 'published'`, slug)
	return scanPostRow(row)
}

// ListPosts returns all posts, newest first.
func (q *Queries) ListPosts(ctx context.Context) ([]Post, error) {
	return q.listPosts(ctx, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC`)
}

// ListPublishedPosts returns published posts ordered by publish time, newest first.
func (q *Queries) ListPublishedPosts(ctx context.Context) ([]Post, error) {
	return q.listPosts(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE status = 'published'
		ORDER BY published_at DESC`)
}

// ListRelatedPostsParams holds the fields for ListRelatedPosts.
type ListRelatedPostsParams struct {
	Category  string
	ExcludeID int64
	Limit     int64
}

// ListRelatedPosts returns published posts in the same category, excluding one post.
func (q *Queries) ListRelatedPosts(ctx context.Context, arg ListRelatedPostsParams) ([]Post, error) {
	return q.listPosts(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE status = 'published' AND category = ? AND id != ?
		ORDER BY published_at DESC
		LIMIT ?`, arg.Category, arg.ExcludeID, arg.Limit)
}

// UpdatePostParams holds the fields for UpdatePost.
type UpdatePostParams struct {
	ID          int64
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    string
	Category    string
	Tags        string
	Status      string
	PublishedAt sql.NullTime
	UpdatedAt   time.Time
}

// UpdatePost replaces a post's content fields and returns the updated row.
func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = ?, slug = ?, excerpt = ?, content = ?, image_url = ?,
			category = ?, tags = ?, status = ?, published_at = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, arg.ImageURL, arg.Category,
		arg.Tags, arg.Status, arg.PublishedAt, arg.UpdatedAt, arg.ID)
	return scanPostRow(row)
}

// DeletePost deletes a post by ID.
func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

// CountPosts returns the total number of posts.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}

// CountPostsByStatus returns the number of posts with the given status.
func (q *Queries) CountPostsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE status = ?`, status).Scan(&count)
	return count, err
}

// PostSlugExists reports whether any post uses the given slug.
func (q *Queries) PostSlugExists(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE slug = ?`, slug).Scan(&count)
	return count, err
}

// PostSlugExistsExcludingParams holds the fields for PostSlugExistsExcluding.
type PostSlugExistsExcludingParams struct {
	Slug string
	ID   int64
}

// PostSlugExistsExcluding reports whether another post uses the given slug.
func (q *Queries) PostSlugExistsExcluding(ctx context.Context, arg PostSlugExistsExcludingParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE slug = ? AND id != ?`, arg.Slug, arg.ID).Scan(&count)
	return count, err
}
