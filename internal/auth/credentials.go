// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the cost used to hash the admin password at startup.
const DefaultBcryptCost = 12

// AdminCredentials verifies logins against the configured admin account.
// The password is held only as a bcrypt hash.
type AdminCredentials struct {
	username     string
	passwordHash []byte
}

// NewAdminCredentials hashes password once so that logins only compare.
func NewAdminCredentials(username, password string, cost int) (*AdminCredentials, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if len(password) > 72 {
		return nil, fmt.Errorf("password must be at most 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &AdminCredentials{username: username, passwordHash: hash}, nil
}

// Username returns the admin username.
func (c *AdminCredentials) Username() string {
	return c.username
}

// Verify reports whether username and password match. The password hash is
// compared even when the username does not match.
func (c *AdminCredentials) Verify(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passMatch := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return userMatch && passMatch
}
