// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/aisolutions/website/internal/auth"
	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/store"
	"github.com/aisolutions/website/internal/testutil"
	"github.com/aisolutions/website/web"
)

const (
	testAdminEmail    = "admin@aisolutions.com"
	testAdminPassword = "admin123"
)

// testApp bundles the pieces a handler test needs: the server, a client
// with a cookie jar, and direct store access.
type testApp struct {
	server  *httptest.Server
	client  *http.Client
	db      *sql.DB
	queries *store.Queries
}

// newTestApp starts a test server with the real route tree minus CSRF
// protection, seeded with a single admin user.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.NewDB(t)
	queries := store.New(db)

	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)

	now := time.Now()
	_, err = queries.CreateUser(t.Context(), store.CreateUserParams{
		Email:        testAdminEmail,
		PasswordHash: hash,
		Name:         "Test Admin",
		Role:         middleware.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	sm := scs.New()
	sm.Lifetime = time.Hour

	templatesFS, err := web.Templates()
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, SessionManager: sm, IsDev: true})
	require.NoError(t, err)

	authHandler := NewAuthHandler(db, renderer, sm, nil)
	postsHandler := NewPostsHandler(db, renderer, sm)
	testimonialsHandler := NewTestimonialsHandler(db, renderer, sm)
	contactsHandler := NewContactsHandler(db, renderer, sm)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Use(middleware.LoadSiteName(db))

	r.Get(RouteLogin, authHandler.LoginForm)
	r.Post(RouteLogin, authHandler.Login)
	r.Post(RouteLogout, authHandler.Logout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(sm))
		r.Use(middleware.LoadUser(sm, db))

		r.Get(RoutePosts, postsHandler.List)
		r.Post(RoutePosts, postsHandler.Create)
		r.Get(RoutePostsID, postsHandler.EditForm)
		r.Post(RoutePostsID, postsHandler.Update)
		r.Post(RoutePostsID+"/delete", postsHandler.Delete)

		r.Get(RouteTestimonials, testimonialsHandler.List)
		r.Post(RouteTestimonialsID+"/status", testimonialsHandler.UpdateStatus)
		r.Post(RouteTestimonialsID+"/featured", testimonialsHandler.ToggleFeatured)

		r.Get(RouteContacts, contactsHandler.List)
		r.Post(RouteContactsID+"/status", contactsHandler.UpdateStatus)
		r.Post(RouteContactsID+"/priority", contactsHandler.UpdatePriority)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := &http.Client{
		Jar: jar,
		// Tests assert on redirects, so don't follow them
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{server: server, client: client, db: db, queries: queries}
}

// postForm submits a form to the given path and returns the response.
func (a *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// get issues a GET request to the given path and returns the response.
func (a *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// login authenticates the client as the seeded admin.
func (a *testApp) login(t *testing.T) {
	t.Helper()
	resp := a.postForm(t, RouteLogin, url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}
