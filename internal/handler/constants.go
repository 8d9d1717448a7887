// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"

	// RouteLogin is the admin login route.
	RouteLogin = "/admin/login"
	// RouteLogout is the admin logout route.
	RouteLogout = "/admin/logout"

	// RoutePosts is the posts admin route.
	RoutePosts = "/posts"
	// RoutePhotos is the photos admin route.
	RoutePhotos = "/photos"
	// RouteEvents is the events admin route.
	RouteEvents = "/events"
	// RouteServices is the services admin route.
	RouteServices = "/services"
	// RouteTestimonials is the testimonials admin route.
	RouteTestimonials = "/testimonials"
	// RouteContacts is the contacts admin route.
	RouteContacts = "/contacts"
	// RouteSettings is the settings admin route.
	RouteSettings = "/settings"
	// RouteActivity is the activity log admin route.
	RouteActivity = "/activity"
	// RoutePassword is the change password admin route.
	RoutePassword = "/password"

	// RoutePostsID is the posts ID route pattern.
	RoutePostsID = RoutePosts + RouteParamID
	// RoutePhotosID is the photos ID route pattern.
	RoutePhotosID = RoutePhotos + RouteParamID
	// RouteEventsID is the events ID route pattern.
	RouteEventsID = RouteEvents + RouteParamID
	// RouteServicesID is the services ID route pattern.
	RouteServicesID = RouteServices + RouteParamID
	// RouteTestimonialsID is the testimonials ID route pattern.
	RouteTestimonialsID = RouteTestimonials + RouteParamID
	// RouteContactsID is the contacts ID route pattern.
	RouteContactsID = RouteContacts + RouteParamID
)

// Admin redirect targets.
const (
	redirectAdmin               = "/admin"
	redirectAdminPosts          = redirectAdmin + RoutePosts
	redirectAdminPostsNew       = redirectAdminPosts + RouteSuffixNew
	redirectAdminPhotos         = redirectAdmin + RoutePhotos
	redirectAdminPhotosNew      = redirectAdminPhotos + RouteSuffixNew
	redirectAdminEvents         = redirectAdmin + RouteEvents
	redirectAdminEventsNew      = redirectAdminEvents + RouteSuffixNew
	redirectAdminServices       = redirectAdmin + RouteServices
	redirectAdminServicesNew    = redirectAdminServices + RouteSuffixNew
	redirectAdminTestimonials   = redirectAdmin + RouteTestimonials
	redirectAdminContacts       = redirectAdmin + RouteContacts
	redirectAdminSettings       = redirectAdmin + RouteSettings
	redirectLogin               = RouteLogin
	redirectContact             = "/contact"
	redirectTestimonialsPublic  = "/testimonials"

	redirectAdminPostsID        = redirectAdminPosts + "/%d"
	redirectAdminPhotosID       = redirectAdminPhotos + "/%d"
	redirectAdminEventsID       = redirectAdminEvents + "/%d"
	redirectAdminServicesID     = redirectAdminServices + "/%d"
	redirectAdminTestimonialsID = redirectAdminTestimonials + "/%d"
	redirectAdminContactsID     = redirectAdminContacts + "/%d"
)

// FilterAll is the sentinel value for "no filtering" in list filter dropdowns.
const FilterAll = "all"

// Post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// Photo statuses.
const (
	PhotoStatusActive = "active"
	PhotoStatusHidden = "hidden"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Service statuses.
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// Testimonial statuses.
const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
	TestimonialStatusRejected = "rejected"
)

// Contact statuses.
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusResolved   = "resolved"
	ContactStatusArchived   = "archived"
)

// Contact priorities.
const (
	ContactPriorityLow    = "low"
	ContactPriorityNormal = "normal"
	ContactPriorityHigh   = "high"
	ContactPriorityUrgent = "urgent"
)

// DefaultContactSubject is used when a public contact submission has no subject.
const DefaultContactSubject = "General Inquiry"

// Status vocabularies for form dropdowns and validation.
var (
	PostStatuses        = []string{PostStatusDraft, PostStatusPublished, PostStatusArchived}
	PhotoStatuses       = []string{PhotoStatusActive, PhotoStatusHidden}
	EventStatuses       = []string{EventStatusUpcoming, EventStatusCompleted, EventStatusCancelled}
	ServiceStatuses     = []string{ServiceStatusActive, ServiceStatusInactive}
	TestimonialStatuses = []string{TestimonialStatusPending, TestimonialStatusApproved, TestimonialStatusRejected}
	ContactStatuses     = []string{ContactStatusNew, ContactStatusInProgress, ContactStatusResolved, ContactStatusArchived}
	ContactPriorities   = []string{ContactPriorityLow, ContactPriorityNormal, ContactPriorityHigh, ContactPriorityUrgent}
)
