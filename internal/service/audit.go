// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic shared across handlers,
// including the activity log used for auditing admin actions.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/aisolutions/website/internal/store"
)

// Audit log levels.
const (
	AuditLevelInfo    = "info"
	AuditLevelWarning = "warning"
	AuditLevelError   = "error"
)

// Audit log categories.
const (
	AuditCategoryAuth    = "auth"
	AuditCategoryContent = "content"
	AuditCategoryUser    = "user"
	AuditCategoryConfig  = "config"
	AuditCategorySystem  = "system"
)

// AuditService records admin activity into the log_entries table.
type AuditService struct {
	queries *store.Queries
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{queries: store.New(db)}
}

// Log creates a new activity log entry.
func (s *AuditService) Log(ctx context.Context, level, category, message string, userID *int64, ipAddress string, metadata map[string]any) error {
	var nullUserID sql.NullInt64
	if userID != nil {
		nullUserID = sql.NullInt64{Int64: *userID, Valid: true}
	}

	metadataJSON := "{}"
	if metadata != nil {
		if jsonBytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	return s.queries.CreateLogEntry(ctx, store.CreateLogEntryParams{
		Level:     level,
		Category:  category,
		Message:   message,
		UserID:    nullUserID,
		IPAddress: ipAddress,
		Metadata:  metadataJSON,
		CreatedAt: time.Now(),
	})
}

// LogAuth records an authentication-related entry.
func (s *AuditService) LogAuth(ctx context.Context, level, message string, userID *int64, ipAddress string, metadata map[string]any) error {
	return s.Log(ctx, level, AuditCategoryAuth, message, userID, ipAddress, metadata)
}

// LogContent records a content-change entry.
func (s *AuditService) LogContent(ctx context.Context, level, message string, userID *int64, ipAddress string, metadata map[string]any) error {
	return s.Log(ctx, level, AuditCategoryContent, message, userID, ipAddress, metadata)
}

// LogConfig records a settings-change entry.
func (s *AuditService) LogConfig(ctx context.Context, level, message string, userID *int64, ipAddress string, metadata map[string]any) error {
	return s.Log(ctx, level, AuditCategoryConfig, message, userID, ipAddress, metadata)
}

// DeleteOldEntries removes log entries older than the given duration.
func (s *AuditService) DeleteOldEntries(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.queries.DeleteLogEntriesBefore(ctx, time.Now().Add(-olderThan))
}
