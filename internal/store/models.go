// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// User is an admin panel account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         string
	LastLoginAt  sql.NullTime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Post is a blog post. Tags is a comma-joined list.
type Post struct {
	ID          int64
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

// Photo is a gallery photo. Tags is a comma-joined list.
type Photo struct {
	ID          int64
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

// Event is a company event. Highlights is a comma-joined list.
type Event struct {
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
	CreatedBy        sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Service is a portfolio entry. Technologies and Features are comma-joined lists.
type Service struct {
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
	CreatedBy    sql.NullInt64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Testimonial is a client testimonial.
type Testimonial struct {
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
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact is a contact form submission.
type Contact struct {
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
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Setting is a key/value site setting.
type Setting struct {
	ID          int64
	Key         string
	Value       string
	Description string
	UpdatedBy   sql.NullInt64
	UpdatedAt   time.Time
}

// LogEntry is an audit log record.
type LogEntry struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	IPAddress string
	Metadata  string // JSON string
	CreatedAt time.Time
}
