// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aisolutions/website/internal/auth"
	"github.com/aisolutions/website/internal/middleware"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/service"
	"github.com/aisolutions/website/internal/store"
)

// SessionKeyUserID is the session key for storing the authenticated user ID.
const SessionKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	audit           *service.AuditService
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		audit:           service.NewAuditService(db),
		loginProtection: lp,
	}
}

// LoginForm renders the login page.
// Already-authenticated users are sent straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), SessionKeyUserID); userID > 0 {
		if _, err := h.queries.GetUserByID(r.Context(), userID); err == nil {
			http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
			return
		}
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title:    "Admin Login",
		SiteName: middleware.GetSiteName(r),
	}); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission. Failures report the same generic
// message whether the account exists or not.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	ip := clientIP(r)

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			_ = h.audit.LogAuth(r.Context(), service.AuditLevelWarning, "Login attempt on locked account", nil, ip, map[string]any{"email": email})
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Account temporarily locked. Try again in %s.", formatDuration(remaining)))
			return
		}
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = h.audit.LogAuth(r.Context(), service.AuditLevelWarning, "Login failed: user not found", nil, ip, map[string]any{"email": email})
		} else {
			slog.Error("database error during login", "error", err)
		}
		// Record failed attempt even for non-existent users to prevent enumeration
		h.recordFailure(w, r, email)
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}
	if !valid {
		_ = h.audit.LogAuth(r.Context(), service.AuditLevelWarning, "Login failed: invalid password", &user.ID, ip, map[string]any{"email": email})
		h.recordFailure(w, r, email)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Re-hash if the stored hash uses outdated parameters
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
				PasswordHash: newHash,
				UpdatedAt:    time.Now(),
				ID:           user.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), store.UpdateUserLastLoginParams{
		LastLoginAt: sql.NullTime{Time: time.Now(), Valid: true},
		ID:          user.ID,
	}); err != nil {
		// Don't block login on this error
		slog.Error("failed to update last login time", "error", err, "user_id", user.ID)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), SessionKeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	_ = h.audit.LogAuth(r.Context(), service.AuditLevelInfo, "User logged in", &user.ID, ip, map[string]any{"email": user.Email})

	h.renderer.SetFlash(r, "Welcome back, "+user.Name, "success")

	// Return the user to the page they were originally headed to
	target := h.sessionManager.PopString(r.Context(), middleware.SessionKeyRedirect)
	if target == "" {
		target = redirectAdmin
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// recordFailure records a failed login attempt and responds with a generic
// error, a remaining-attempts warning, or a lockout message.
func (h *AuthHandler) recordFailure(w http.ResponseWriter, r *http.Request, email string) {
	if h.loginProtection != nil {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Account locked for %s.", formatDuration(lockDuration)))
			return
		}
		if remaining := h.loginProtection.GetRemainingAttempts(email); remaining <= 3 && remaining > 0 {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Invalid email or password. %d attempts remaining.", remaining))
			return
		}
	}
	flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
}

// Logout destroys the session and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), SessionKeyUserID)

	if userID > 0 {
		_ = h.audit.LogAuth(r.Context(), service.AuditLevelInfo, "User logged out", &userID, clientIP(r), nil)
	}

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("user logged out", "user_id", userID)
	flashAndRedirect(w, r, h.renderer, redirectLogin, "You have been logged out", "info")
}

// PasswordForm renders the change-password page.
func (h *AuthHandler) PasswordForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/password", render.TemplateData{
		Title:    "Change Password",
		User:     middleware.GetUser(r),
		SiteName: middleware.GetSiteName(r),
	}); err != nil {
		logAndInternalError(w, "failed to render password page", "error", err)
	}
}

// PasswordUpdate handles the change-password form submission.
func (h *AuthHandler) PasswordUpdate(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
		return
	}

	passwordURL := redirectAdmin + RoutePassword
	if !parseFormOrRedirect(w, r, h.renderer, passwordURL) {
		return
	}

	current := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	valid, err := auth.CheckPassword(current, user.PasswordHash)
	if err != nil || !valid {
		flashError(w, r, h.renderer, passwordURL, "Current password is incorrect")
		return
	}
	if len(newPassword) < MinPasswordLength {
		flashError(w, r, h.renderer, passwordURL,
			fmt.Sprintf("New password must be at least %d characters", MinPasswordLength))
		return
	}
	if newPassword != confirm {
		flashError(w, r, h.renderer, passwordURL, "Passwords do not match")
		return
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		logAndInternalError(w, "failed to hash password", "error", err)
		return
	}

	if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
		PasswordHash: hash,
		UpdatedAt:    time.Now(),
		ID:           user.ID,
	}); err != nil {
		logAndInternalError(w, "failed to update password", "error", err, "user_id", user.ID)
		return
	}

	_ = h.audit.LogAuth(r.Context(), service.AuditLevelInfo, "Password changed", &user.ID, clientIP(r), nil)
	flashSuccess(w, r, h.renderer, redirectAdmin, "Password updated")
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
