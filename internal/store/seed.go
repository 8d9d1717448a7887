// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// EnsureAdminUserParams holds the fields for EnsureAdminUser.
type EnsureAdminUserParams struct {
	Email        string
	PasswordHash string
	Name         string
}

// EnsureAdminUser creates the initial admin account if no users exist yet.
// Returns true when an account was created.
func (q *Queries) EnsureAdminUser(ctx context.Context, arg EnsureAdminUserParams) (bool, error) {
	count, err := q.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	_, err = q.CreateUser(ctx, CreateUserParams{
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		Name:         arg.Name,
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return false, fmt.Errorf("create admin user: %w", err)
	}
	return true, nil
}

// EnsureDefaultSettings inserts the site settings that templates depend on,
// without overwriting values an admin has already changed.
func (q *Queries) EnsureDefaultSettings(ctx context.Context) error {
	defaults := []struct {
		key, value, description string
	}{
		{"site_name", "AI Solutions", "Site name shown in the header and page titles"},
		{"site_tagline", "Intelligent software for growing businesses", "Short line under the site name"},
		{"contact_email", "hello@aisolutions.com", "Address shown on the contact page"},
		{"contact_phone", "+1 (555) 010-2030", "Phone number shown on the contact page"},
		{"footer_text", "Building AI-powered products since 2019.", "Footer blurb"},
	}

	now := time.Now().UTC()
	for _, d := range defaults {
		_, err := q.GetSetting(ctx, d.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("get setting %q: %w", d.key, err)
		}
		err = q.UpsertSetting(ctx, UpsertSettingParams{
			Key:         d.key,
			Value:       d.value,
			Description: d.description,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("seed setting %q: %w", d.key, err)
		}
	}
	return nil
}

// SeedDemoContent inserts sample rows for every content table so a fresh
// install has something to show. No-op when posts already exist.
func (q *Queries) SeedDemoContent(ctx context.Context, authorID int64) error {
	count, err := q.CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	author := sql.NullInt64{Int64: authorID, Valid: true}

	_, err = q.CreatePost(ctx, CreatePostParams{
		Title:       "How We Ship Machine Learning Features",
		Slug:        "how-we-ship-machine-learning-features",
		Excerpt:     "A look at our delivery pipeline for ML-backed product features.",
		Content:     "From notebook to production, here is the path every model takes at AI Solutions.",
		Category:    "engineering",
		Tags:        "ai,mlops",
		Status:      "published",
		AuthorID:    author,
		PublishedAt: sql.NullTime{Time: now, Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("seed post: %w", err)
	}

	_, err = q.CreatePhoto(ctx, CreatePhotoParams{
		Title:       "Team offsite 2025",
		Description: "The whole team at our annual planning offsite.",
		ImageURL:    "/static/img/demo-offsite.jpg",
		Category:    "team",
		Tags:        "team,offsite",
		Status:      "active",
		UploadedBy:  author,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("seed photo: %w", err)
	}

	_, err = q.CreateEvent(ctx, CreateEventParams{
		Title:        "Applied AI Meetup",
		Description:  "Monthly meetup on practical machine learning in production.",
		EventDate:    now.AddDate(0, 1, 0).Format("2006-01-02"),
		EventTime:    "18:30",
		Location:     "AI Solutions HQ",
		EventType:    "meetup",
		Highlights:   "lightning talks,live demos",
		MaxAttendees: 80,
		Status:       "upcoming",
		CreatedBy:    author,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("seed event: %w", err)
	}

	_, err = q.CreateService(ctx, CreateServiceParams{
		Title:        "Customer Support Chatbot",
		Description:  "A retrieval-augmented chatbot trained on your help center.",
		Category:     "chatbots",
		Technologies: "go,postgres,openai",
		Features:     "ticket deflection,handover to agents",
		PriceRange:   "$10k-$25k",
		Status:       "active",
		CreatedBy:    author,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("seed service: %w", err)
	}

	_, err = q.CreateTestimonial(ctx, CreateTestimonialParams{
		Name:      "Maria Chen",
		Role:      "CTO",
		Company:   "Northwind Retail",
		Project:   "Customer Support Chatbot",
		Rating:    5,
		Text:      "The chatbot cut our first-response time in half within a month.",
		Featured:  true,
		Status:    "approved",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("seed testimonial: %w", err)
	}

	_, err = q.CreateContact(ctx, CreateContactParams{
		Name:      "Sam Ortiz",
		Email:     "sam@example.com",
		Subject:   "General Inquiry",
		Message:   "Interested in a demo of your analytics dashboards.",
		Priority:  "normal",
		Status:    "new",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("seed contact: %w", err)
	}

	return nil
}
