// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package assist

import (
	"fmt"

	"github.com/tomtom215/lenscape/internal/cache"
)

// Supported request types.
const (
	TypeCaption      = "caption"
	TypeCritique     = "critique"
	TypeTags         = "tags"
	TypeQA           = "qa"
	TypeLesson       = "lesson"
	TypeContestBrief = "contest_brief"
)

var supportedTypes = []string{
	TypeCaption,
	TypeCritique,
	TypeTags,
	TypeQA,
	TypeLesson,
	TypeContestBrief,
}

// Types returns the supported request types in display order.
func Types() []string {
	out := make([]string, len(supportedTypes))
	copy(out, supportedTypes)
	return out
}

// ValidType reports whether t is a supported request type.
func ValidType(t string) bool {
	for _, s := range supportedTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Request is one content generation request. Params keep the order they
// arrived in, which is part of the cache key.
type Request struct {
	Type   string       `json:"type"`
	Params cache.Params `json:"params"`
}

// Validate checks the request type.
func (r Request) Validate() error {
	if !ValidType(r.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownType, r.Type)
	}
	return nil
}

// Key returns the cache fingerprint of the request.
func (r Request) Key() string {
	return cache.Fingerprint(r.Type, r.Params)
}

// Result is the outcome of a successful assist call.
type Result struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Cached  bool   `json:"cached"`
}
