// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() LoginProtectionConfig {
	cfg := DefaultLoginProtectionConfig()
	cfg.MaxFailedAttempts = 3
	cfg.LockoutDuration = time.Minute
	return cfg
}

func TestAccountLocksAfterMaxFailures(t *testing.T) {
	lp := NewLoginProtection(testConfig())
	email := "user@example.com"

	locked, _ := lp.IsAccountLocked(email)
	assert.False(t, locked)

	for i := 0; i < 2; i++ {
		locked, _ := lp.RecordFailedAttempt(email)
		assert.False(t, locked, "attempt %d should not lock", i+1)
	}

	locked, duration := lp.RecordFailedAttempt(email)
	assert.True(t, locked)
	assert.Greater(t, duration, time.Duration(0))

	locked, _ = lp.IsAccountLocked(email)
	assert.True(t, locked)
}

func TestSuccessfulLoginClearsFailures(t *testing.T) {
	lp := NewLoginProtection(testConfig())
	email := "user@example.com"

	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	assert.Equal(t, 1, lp.GetRemainingAttempts(email))

	lp.RecordSuccessfulLogin(email)
	assert.Equal(t, 3, lp.GetRemainingAttempts(email))

	locked, _ := lp.IsAccountLocked(email)
	assert.False(t, locked)
}

func TestRemainingAttemptsCountsDown(t *testing.T) {
	lp := NewLoginProtection(testConfig())
	email := "user@example.com"

	assert.Equal(t, 3, lp.GetRemainingAttempts(email))
	lp.RecordFailedAttempt(email)
	assert.Equal(t, 2, lp.GetRemainingAttempts(email))
}

func TestAccountsAreTrackedIndependently(t *testing.T) {
	lp := NewLoginProtection(testConfig())

	lp.RecordFailedAttempt("a@example.com")
	lp.RecordFailedAttempt("a@example.com")
	lp.RecordFailedAttempt("a@example.com")

	locked, _ := lp.IsAccountLocked("a@example.com")
	assert.True(t, locked)

	locked, _ = lp.IsAccountLocked("b@example.com")
	assert.False(t, locked)
}
