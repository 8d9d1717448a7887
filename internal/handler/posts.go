// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
	"github.com/aisolutions/website/internal/util"
)

// PostsHandler handles blog post management routes.
type PostsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewPostsHandler creates a new PostsHandler.
func NewPostsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *PostsHandler {
	return &PostsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// PostsListData holds data for the posts list template.
type PostsListData struct {
	Posts      []store.Post
	TotalPosts int
	Search     string
	Status     string
	Category   string
	Statuses   []string
}

// filterPosts applies the list filters in memory. Search matches title,
// excerpt, and category; the dropdowns narrow further.
func filterPosts(posts []store.Post, search, status, category string) []store.Post {
	return filterSlice(posts, func(p store.Post) bool {
		return matchesSearch(search, p.Title, p.Excerpt, p.Category) &&
			matchesChoice(status, p.Status) &&
			matchesChoice(category, p.Category)
	})
}

// postCategories collects the distinct categories present in the list,
// preserving first-seen order.
func postCategories(posts []store.Post) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range posts {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// List handles GET /admin/posts.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	category := r.URL.Query().Get("category")

	posts, err := h.queries.ListPosts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}

	filtered := filterPosts(posts, search, status, category)

	h.render(w, r, "admin/posts_list", "Blog Posts", PostsListData{
		Posts:      filtered,
		TotalPosts: len(filtered),
		Search:     search,
		Status:     status,
		Category:   category,
		Statuses:   PostStatuses,
	})
}

// PostFormData holds data for the post form template.
type PostFormData struct {
	Post       *store.Post
	Statuses   []string
	Errors     map[string]string
	FormValues map[string]string
	IsEdit     bool
}

// NewForm handles GET /admin/posts/new.
func (h *PostsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/posts_form", "New Post", PostFormData{
		Statuses:   PostStatuses,
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	})
}

// postForm holds parsed and normalized form values.
type postForm struct {
	title    string
	slug     string
	excerpt  string
	content  string
	imageURL string
	category string
	tags     string
	status   string
}

// parsePostForm reads the post form, deriving the slug from the title when
// none is supplied and normalizing the tags list.
func parsePostForm(r *http.Request) postForm {
	f := postForm{
		title:    strings.TrimSpace(r.FormValue("title")),
		slug:     strings.TrimSpace(r.FormValue("slug")),
		excerpt:  strings.TrimSpace(r.FormValue("excerpt")),
		content:  r.FormValue("content"),
		imageURL: strings.TrimSpace(r.FormValue("image_url")),
		category: strings.TrimSpace(r.FormValue("category")),
		tags:     util.JoinList(util.SplitList(r.FormValue("tags"))),
		status:   r.FormValue("status"),
	}
	if f.slug == "" {
		f.slug = util.Slugify(f.title)
	} else {
		f.slug = util.Slugify(f.slug)
	}
	return f
}

func (f postForm) values() map[string]string {
	return map[string]string{
		"title":     f.title,
		"slug":      f.slug,
		"excerpt":   f.excerpt,
		"content":   f.content,
		"image_url": f.imageURL,
		"category":  f.category,
		"tags":      f.tags,
		"status":    f.status,
	}
}

// validate checks the form and returns field errors. excludeID skips the
// slug uniqueness check for the post being edited.
func (h *PostsHandler) validate(r *http.Request, f postForm, excludeID int64) map[string]string {
	errs := make(map[string]string)

	if f.title == "" {
		errs["title"] = "Title is required"
	}
	if f.content == "" {
		errs["content"] = "Content is required"
	}
	if f.status == "" || !validChoice(f.status, PostStatuses) {
		errs["status"] = "Invalid status"
	}
	if f.slug == "" || !util.IsValidSlug(f.slug) {
		errs["slug"] = "Slug must contain only lowercase letters, numbers, and hyphens"
	} else {
		var count int64
		var err error
		if excludeID > 0 {
			count, err = h.queries.PostSlugExistsExcluding(r.Context(), store.PostSlugExistsExcludingParams{
				Slug: f.slug,
				ID:   excludeID,
			})
		} else {
			count, err = h.queries.PostSlugExists(r.Context(), f.slug)
		}
		if err != nil {
			slog.Error("failed to check slug", "error", err, "slug", f.slug)
			errs["slug"] = "Error checking slug"
		} else if count > 0 {
			errs["slug"] = "Slug is already in use"
		}
	}

	return errs
}

// Create handles POST /admin/posts.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminPostsNew) {
		return
	}

	f := parsePostForm(r)
	if errs := h.validate(r, f, 0); len(errs) > 0 {
		h.render(w, r, "admin/posts_form", "New Post", PostFormData{
			Statuses:   PostStatuses,
			Errors:     errs,
			FormValues: f.values(),
		})
		return
	}

	now := time.Now()
	var publishedAt sql.NullTime
	if f.status == PostStatusPublished {
		publishedAt = sql.NullTime{Time: now, Valid: true}
	}

	post, err := h.queries.CreatePost(r.Context(), store.CreatePostParams{
		Title:       f.title,
		Slug:        f.slug,
		Excerpt:     f.excerpt,
		Content:     f.content,
		ImageURL:    f.imageURL,
		Category:    f.category,
		Tags:        f.tags,
		Status:      f.status,
		AuthorID:    sql.NullInt64{Int64: middleware.GetUserID(r), Valid: true},
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create post", "error", err)
		flashError(w, r, h.renderer, redirectAdminPostsNew, "Error creating post")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Post created", &userID, clientIP(r), map[string]any{"post_id": post.ID, "title": post.Title})
	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post created successfully")
}

// EditForm handles GET /admin/posts/{id}.
func (h *PostsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPosts, "Invalid post ID")
		return
	}

	post, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminPosts, "post", id,
		func(id int64) (store.Post, error) { return h.queries.GetPostByID(r.Context(), id) })
	if !ok {
		return
	}

	h.render(w, r, "admin/posts_form", "Edit Post", PostFormData{
		Post:       &post,
		Statuses:   PostStatuses,
		Errors:     make(map[string]string),
		FormValues: map[string]string{
			"title":     post.Title,
			"slug":      post.Slug,
			"excerpt":   post.Excerpt,
			"content":   post.Content,
			"image_url": post.ImageURL,
			"category":  post.Category,
			"tags":      post.Tags,
			"status":    post.Status,
		},
		IsEdit: true,
	})
}

// Update handles POST /admin/posts/{id}.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPosts, "Invalid post ID")
		return
	}

	post, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminPosts, "post", id,
		func(id int64) (store.Post, error) { return h.queries.GetPostByID(r.Context(), id) })
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminPostsID, id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	f := parsePostForm(r)
	if errs := h.validate(r, f, id); len(errs) > 0 {
		h.render(w, r, "admin/posts_form", "Edit Post", PostFormData{
			Post:       &post,
			Statuses:   PostStatuses,
			Errors:     errs,
			FormValues: f.values(),
			IsEdit:     true,
		})
		return
	}

	// Stamp the publish time on the draft-to-published transition; clear it
	// when the post leaves the published state.
	publishedAt := post.PublishedAt
	if f.status == PostStatusPublished && !publishedAt.Valid {
		publishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	} else if f.status != PostStatusPublished {
		publishedAt = sql.NullTime{}
	}

	if _, err := h.queries.UpdatePost(r.Context(), store.UpdatePostParams{
		ID:          id,
		Title:       f.title,
		Slug:        f.slug,
		Excerpt:     f.excerpt,
		Content:     f.content,
		ImageURL:    f.imageURL,
		Category:    f.category,
		Tags:        f.tags,
		Status:      f.status,
		PublishedAt: publishedAt,
		UpdatedAt:   time.Now(),
	}); err != nil {
		slog.Error("failed to update post", "error", err, "post_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating post")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Post updated", &userID, clientIP(r), map[string]any{"post_id": id, "title": f.title})
	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post updated successfully")
}

// Delete handles POST /admin/posts/{id}/delete.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminPosts, "Invalid post ID")
		return
	}

	if err := h.queries.DeletePost(r.Context(), id); err != nil {
		slog.Error("failed to delete post", "error", err, "post_id", id)
		flashError(w, r, h.renderer, redirectAdminPosts, "Error deleting post")
		return
	}

	userID := middleware.GetUserID(r)
	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Post deleted", &userID, clientIP(r), map[string]any{"post_id": id})
	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post deleted")
}

func (h *PostsHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
