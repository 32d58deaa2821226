// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lenscape/internal/database"
	"github.com/tomtom215/lenscape/internal/validation"
)

// CreateWork publishes a new work.
func (h *Handler) CreateWork(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CreateWorkRequest
	if err := decodeJSONBody(w, r, &req, false); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(validation.ErrorCode, verr.Error(), verr.Details())
		return
	}

	work, err := h.db.CreateWork(r.Context(), &database.Work{UserID: req.UserID, Title: req.Title})
	if err != nil {
		if errors.Is(err, database.ErrInvalidWork) {
			rw.BadRequest(err.Error())
			return
		}
		rw.DatabaseError(err)
		return
	}
	rw.Created(work)
}

// GetWork returns one work by ID.
func (h *Handler) GetWork(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := workID(rw, r)
	if !ok {
		return
	}
	work, err := h.db.GetWork(r.Context(), id)
	if err != nil {
		writeWorkError(rw, err)
		return
	}
	rw.Success(work)
}

// LikeWork records a like.
func (h *Handler) LikeWork(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.db.IncrementLikes)
}

// CommentWork records a comment.
func (h *Handler) CommentWork(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.db.IncrementComments)
}

// ViewWork records a view.
func (h *Handler) ViewWork(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.db.IncrementViews)
}

func (h *Handler) engage(w http.ResponseWriter, r *http.Request, increment func(context.Context, int64) error) {
	rw := NewResponseWriter(w, r)

	id, ok := workID(rw, r)
	if !ok {
		return
	}
	if err := increment(r.Context(), id); err != nil {
		writeWorkError(rw, err)
		return
	}
	rw.NoContent()
}

// workID parses the {id} path parameter, writing a 400 on failure.
func workID(rw *ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		rw.BadRequest("Work id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeWorkError(rw *ResponseWriter, err error) {
	if errors.Is(err, database.ErrNotFound) {
		rw.NotFound("Work not found")
		return
	}
	rw.DatabaseError(err)
}
