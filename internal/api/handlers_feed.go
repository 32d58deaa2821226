// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"net/http"

	"github.com/tomtom215/lenscape/internal/feed"
	"github.com/tomtom215/lenscape/internal/validation"
)

// Feed ranks recent works and returns one page of the result.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, field, err := parseFeedQuery(r)
	if err != nil {
		rw.ValidationError(validation.ErrorCode, field+" "+err.Error(), map[string]interface{}{"field": field})
		return
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		rw.ValidationError(validation.ErrorCode, verr.Error(), verr.Details())
		return
	}

	cfg := h.config.Feed
	limit := q.Limit
	if limit == 0 {
		limit = cfg.DefaultPageSize
	}
	if limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}
	days := q.Days
	if days == 0 {
		days = cfg.CandidateDays
	}

	now := h.ranker.Now()
	items, err := h.db.FeedCandidates(r.Context(), now.AddDate(0, 0, -days), cfg.MaxCandidates)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	ranked := h.ranker.RankAt(items, now)
	page := feed.Page(ranked, q.Offset, limit)

	rw.SuccessWithPagination(page, &PaginationMeta{
		Total:   int64(len(ranked)),
		Count:   len(page),
		Offset:  q.Offset,
		Limit:   limit,
		HasMore: q.Offset+len(page) < len(ranked),
	})
}
