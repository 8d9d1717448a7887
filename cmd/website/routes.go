// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aisolutions/website/internal/config"
	"github.com/aisolutions/website/internal/handler"
	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/web"
)

const requestTimeout = 60 * time.Second

// newRouter builds the full route tree: public site, auth, and the
// session-protected admin panel.
func newRouter(cfg *config.Config, db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) (chi.Router, error) {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestPath)
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))
	r.Use(sm.LoadAndSave)
	r.Use(middleware.LoadSiteName(db))

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	authHandler := handler.NewAuthHandler(db, renderer, sm, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer, sm)
	postsHandler := handler.NewPostsHandler(db, renderer, sm)
	photosHandler := handler.NewPhotosHandler(db, renderer, sm)
	eventsHandler := handler.NewEventsHandler(db, renderer, sm)
	servicesHandler := handler.NewServicesHandler(db, renderer, sm)
	testimonialsHandler := handler.NewTestimonialsHandler(db, renderer, sm)
	contactsHandler := handler.NewContactsHandler(db, renderer, sm)
	settingsHandler := handler.NewSettingsHandler(db, renderer, sm)
	frontendHandler := handler.NewFrontendHandler(db, renderer, sm)
	healthHandler := handler.NewHealthHandler(db)

	staticFS, err := web.Static()
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	r.Get("/health", healthHandler.Check)

	// Public site
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalLoadUser(sm, db))

		r.Get("/", frontendHandler.Home)
		r.Get("/about", frontendHandler.About)
		r.Get("/portfolio", frontendHandler.Services)
		r.Get("/blog", frontendHandler.Blog)
		r.Get("/blog"+handler.RouteParamSlug, frontendHandler.BlogPost)
		r.Get("/gallery", frontendHandler.Gallery)
		r.Get("/events", frontendHandler.Events)
		r.Get("/services", frontendHandler.Services)
		r.Get("/testimonials", frontendHandler.Testimonials)
		r.Post("/testimonials", frontendHandler.SubmitTestimonial)
		r.Get("/contact", frontendHandler.Contact)
		r.Post("/contact", frontendHandler.SubmitContact)
	})

	// Login and logout
	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
	r.Post(handler.RouteLogout, authHandler.Logout)

	// Admin panel
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(sm))
		r.Use(middleware.LoadUser(sm, db))
		r.Use(middleware.RequireEditor())

		r.Get(handler.RouteRoot, adminHandler.Dashboard)
		r.Get(handler.RouteActivity, adminHandler.Activity)

		r.Get(handler.RoutePassword, authHandler.PasswordForm)
		r.Post(handler.RoutePassword, authHandler.PasswordUpdate)

		r.Get(handler.RoutePosts, postsHandler.List)
		r.Get(handler.RoutePosts+handler.RouteSuffixNew, postsHandler.NewForm)
		r.Post(handler.RoutePosts, postsHandler.Create)
		r.Get(handler.RoutePostsID, postsHandler.EditForm)
		r.Post(handler.RoutePostsID, postsHandler.Update)
		r.Post(handler.RoutePostsID+"/delete", postsHandler.Delete)

		r.Get(handler.RoutePhotos, photosHandler.List)
		r.Get(handler.RoutePhotos+handler.RouteSuffixNew, photosHandler.NewForm)
		r.Post(handler.RoutePhotos, photosHandler.Create)
		r.Get(handler.RoutePhotosID, photosHandler.EditForm)
		r.Post(handler.RoutePhotosID, photosHandler.Update)
		r.Post(handler.RoutePhotosID+"/delete", photosHandler.Delete)

		r.Get(handler.RouteEvents, eventsHandler.List)
		r.Get(handler.RouteEvents+handler.RouteSuffixNew, eventsHandler.NewForm)
		r.Post(handler.RouteEvents, eventsHandler.Create)
		r.Get(handler.RouteEventsID, eventsHandler.EditForm)
		r.Post(handler.RouteEventsID, eventsHandler.Update)
		r.Post(handler.RouteEventsID+"/delete", eventsHandler.Delete)

		r.Get(handler.RouteServices, servicesHandler.List)
		r.Get(handler.RouteServices+handler.RouteSuffixNew, servicesHandler.NewForm)
		r.Post(handler.RouteServices, servicesHandler.Create)
		r.Get(handler.RouteServicesID, servicesHandler.EditForm)
		r.Post(handler.RouteServicesID, servicesHandler.Update)
		r.Post(handler.RouteServicesID+"/delete", servicesHandler.Delete)

		r.Get(handler.RouteTestimonials, testimonialsHandler.List)
		r.Get(handler.RouteTestimonialsID, testimonialsHandler.EditForm)
		r.Post(handler.RouteTestimonialsID, testimonialsHandler.Update)
		r.Post(handler.RouteTestimonialsID+"/status", testimonialsHandler.UpdateStatus)
		r.Post(handler.RouteTestimonialsID+"/featured", testimonialsHandler.ToggleFeatured)
		r.Post(handler.RouteTestimonialsID+"/delete", testimonialsHandler.Delete)

		r.Get(handler.RouteContacts, contactsHandler.List)
		r.Get(handler.RouteContactsID, contactsHandler.Detail)
		r.Post(handler.RouteContactsID+"/status", contactsHandler.UpdateStatus)
		r.Post(handler.RouteContactsID+"/priority", contactsHandler.UpdatePriority)
		r.Post(handler.RouteContactsID+"/delete", contactsHandler.Delete)

		r.Get(handler.RouteSettings, settingsHandler.Form)
		r.Post(handler.RouteSettings, settingsHandler.Update)
	})

	r.NotFound(frontendHandler.NotFound)

	return r, nil
}
