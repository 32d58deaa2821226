// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

// Package validation wraps go-playground/validator v10 with a shared
// instance, client-facing field names, and messages for the API's
// VALIDATION_ERROR responses.
//
//	type FeedQuery struct {
//	    Limit  int `query:"limit" validate:"min=1,max=100"`
//	    Offset int `query:"offset" validate:"min=0"`
//	}
package validation
