// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
)

const relatedPostsLimit = 3

// FrontendHandler serves the public site pages.
type FrontendHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	audit          *service.AuditService
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *FrontendHandler {
	return &FrontendHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		audit:          service.NewAuditService(db),
	}
}

// HomeData holds data for the home page template.
type HomeData struct {
	Services     []store.Service
	Posts        []store.Post
	Testimonials []store.Testimonial
}

// Home handles GET /.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListActiveServices(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list services", "error", err)
		return
	}

	posts, err := h.queries.ListPublishedPosts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}
	if len(posts) > relatedPostsLimit {
		posts = posts[:relatedPostsLimit]
	}

	testimonials, err := h.queries.ListApprovedTestimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}
	if len(testimonials) > relatedPostsLimit {
		testimonials = testimonials[:relatedPostsLimit]
	}

	h.render(w, r, "frontend/home", "Home", HomeData{
		Services:     services,
		Posts:        posts,
		Testimonials: testimonials,
	})
}

// AboutData holds data for the about page template.
type AboutData struct {
	Services     []store.Service
	Testimonials []store.Testimonial
}

// About handles GET /about.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListActiveServices(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list services", "error", err)
		return
	}

	testimonials, err := h.queries.ListApprovedTestimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}
	if len(testimonials) > relatedPostsLimit {
		testimonials = testimonials[:relatedPostsLimit]
	}

	h.render(w, r, "frontend/about", "About Us", AboutData{
		Services:     services,
		Testimonials: testimonials,
	})
}

// BlogListData holds data for the blog index template.
type BlogListData struct {
	Posts      []store.Post
	Search     string
	Category   string
	Categories []string
}

// Blog handles GET /blog. Search and category narrow the published list.
func (h *FrontendHandler) Blog(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	posts, err := h.queries.ListPublishedPosts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}

	categories := postCategories(posts)
	filtered := filterSlice(posts, func(p store.Post) bool {
		return matchesSearch(search, p.Title, p.Excerpt, p.Category) &&
			matchesChoice(category, p.Category)
	})

	h.render(w, r, "frontend/blog", "Blog", BlogListData{
		Posts:      filtered,
		Search:     search,
		Category:   category,
		Categories: categories,
	})
}

// BlogPostData holds data for a single blog post template.
type BlogPostData struct {
	Post    store.Post
	Related []store.Post
}

// BlogPost handles GET /blog/{slug}. Only published posts are visible here;
// drafts and archived posts 404.
func (h *FrontendHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.queries.GetPublishedPostBySlug(r.Context(), slug)
	if errors.Is(err, sql.ErrNoRows) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to load post", "error", err, "slug", slug)
		return
	}

	related, err := h.queries.ListRelatedPosts(r.Context(), store.ListRelatedPostsParams{
		Category:  post.Category,
		ExcludeID: post.ID,
		Limit:     relatedPostsLimit,
	})
	if err != nil {
		slog.Error("failed to load related posts", "error", err, "post_id", post.ID)
	}

	h.render(w, r, "frontend/blog_post", post.Title, BlogPostData{Post: post, Related: related})
}

// GalleryData holds data for the gallery template.
type GalleryData struct {
	Photos     []store.Photo
	Categories []string
	Category   string
}

// Gallery handles GET /gallery. Only active photos are shown; the category
// query parameter narrows the grid.
func (h *FrontendHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	photos, err := h.queries.ListActivePhotos(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list photos", "error", err)
		return
	}

	categories := photoCategories(photos)
	filtered := filterSlice(photos, func(p store.Photo) bool {
		return matchesChoice(category, p.Category)
	})

	h.render(w, r, "frontend/gallery", "Gallery", GalleryData{
		Photos:     filtered,
		Categories: categories,
		Category:   category,
	})
}

// EventsData holds data for the public events template.
type EventsData struct {
	Upcoming []store.Event
	Past     []store.Event
}

// Events handles GET /events.
func (h *FrontendHandler) Events(w http.ResponseWriter, r *http.Request) {
	upcoming, err := h.queries.ListEventsByStatus(r.Context(), EventStatusUpcoming)
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	past, err := h.queries.ListEventsByStatus(r.Context(), EventStatusCompleted)
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	h.render(w, r, "frontend/events", "Events", EventsData{Upcoming: upcoming, Past: past})
}

// ServicesPageData holds data for the public services template.
type ServicesPageData struct {
	Services []store.Service
}

// Services handles GET /services.
func (h *FrontendHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListActiveServices(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list services", "error", err)
		return
	}

	h.render(w, r, "frontend/services", "Services", ServicesPageData{Services: services})
}

// TestimonialsPageData holds data for the public testimonials template.
type TestimonialsPageData struct {
	Testimonials []store.Testimonial
	Errors       map[string]string
	FormValues   map[string]string
}

// Testimonials handles GET /testimonials. Featured testimonials sort first.
func (h *FrontendHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.queries.ListApprovedTestimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}

	h.render(w, r, "frontend/testimonials", "Testimonials", TestimonialsPageData{
		Testimonials: testimonials,
		Errors:       make(map[string]string),
		FormValues:   make(map[string]string),
	})
}

// SubmitTestimonial handles POST /testimonials. Public submissions always
// enter the moderation queue as pending and unfeatured, whatever the form
// claims.
func (h *FrontendHandler) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectTestimonialsPublic) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	text := strings.TrimSpace(r.FormValue("text"))
	rating, _ := strconv.ParseInt(r.FormValue("rating"), 10, 64)
	if rating < 1 || rating > 5 {
		rating = 5
	}

	errs := make(map[string]string)
	if name == "" {
		errs["name"] = "Name is required"
	}
	if text == "" {
		errs["text"] = "Please write a few words"
	}
	if len(errs) > 0 {
		testimonials, err := h.queries.ListApprovedTestimonials(r.Context())
		if err != nil {
			logAndInternalError(w, "failed to list testimonials", "error", err)
			return
		}
		h.render(w, r, "frontend/testimonials", "Testimonials", TestimonialsPageData{
			Testimonials: testimonials,
			Errors:       errs,
			FormValues: map[string]string{
				"name":    name,
				"role":    r.FormValue("role"),
				"company": r.FormValue("company"),
				"rating":  r.FormValue("rating"),
				"text":    text,
			},
		})
		return
	}

	now := time.Now()
	t, err := h.queries.CreateTestimonial(r.Context(), store.CreateTestimonialParams{
		Name:      name,
		Role:      strings.TrimSpace(r.FormValue("role")),
		Company:   strings.TrimSpace(r.FormValue("company")),
		Rating:    rating,
		Text:      text,
		Featured:  false,
		Status:    TestimonialStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create testimonial", "error", err)
		flashError(w, r, h.renderer, redirectTestimonialsPublic, "Something went wrong, please try again")
		return
	}

	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Testimonial submitted", nil, clientIP(r), map[string]any{"testimonial_id": t.ID})
	flashSuccess(w, r, h.renderer, redirectTestimonialsPublic, "Thank you! Your testimonial is awaiting review.")
}

// ContactPageData holds data for the contact page template.
type ContactPageData struct {
	Errors     map[string]string
	FormValues map[string]string
}

// Contact handles GET /contact.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "frontend/contact", "Contact", ContactPageData{
		Errors:     make(map[string]string),
		FormValues: make(map[string]string),
	})
}

// SubmitContact handles POST /contact. Submissions always start as new with
// normal priority; a missing subject falls back to a default.
func (h *FrontendHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectContact) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	subject := strings.TrimSpace(r.FormValue("subject"))
	message := strings.TrimSpace(r.FormValue("message"))
	if subject == "" {
		subject = DefaultContactSubject
	}

	errs := make(map[string]string)
	if name == "" {
		errs["name"] = "Name is required"
	}
	if email == "" || !strings.Contains(email, "@") {
		errs["email"] = "A valid email address is required"
	}
	if message == "" {
		errs["message"] = "Message is required"
	}
	if len(errs) > 0 {
		h.render(w, r, "frontend/contact", "Contact", ContactPageData{
			Errors: errs,
			FormValues: map[string]string{
				"name":    name,
				"email":   email,
				"phone":   r.FormValue("phone"),
				"subject": r.FormValue("subject"),
				"message": message,
			},
		})
		return
	}

	now := time.Now()
	c, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(r.FormValue("phone")),
		Subject:   subject,
		Message:   message,
		Priority:  ContactPriorityNormal,
		Status:    ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create contact", "error", err)
		flashError(w, r, h.renderer, redirectContact, "Something went wrong, please try again")
		return
	}

	_ = h.audit.LogContent(r.Context(), service.AuditLevelInfo, "Contact submitted", nil, clientIP(r), map[string]any{"contact_id": c.ID})
	flashSuccess(w, r, h.renderer, redirectContact, "Thanks for reaching out! We will get back to you soon.")
}

// NotFound handles unmatched routes.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

func (h *FrontendHandler) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, r, "frontend/404", render.TemplateData{
		Title:    "Page Not Found",
		SiteName: middleware.GetSiteName(r),
	}); err != nil {
		slog.Error("failed to render 404 page", "error", err)
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

func (h *FrontendHandler) render(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	if err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "error", err, "template", tmpl)
	}
}
