// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/lenscape/internal/logging"
)

var (
	// ErrNotFound is returned when a work does not exist.
	ErrNotFound = errors.New("work not found")

	// ErrInvalidWork is returned when a work fails basic field checks.
	ErrInvalidWork = errors.New("invalid work")
)

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource in an error path where the close error is
// not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
