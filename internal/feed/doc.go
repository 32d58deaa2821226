// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

// Package feed orders the works feed by a blended engagement and recency score.
//
// # Scoring
//
// Each work receives:
//
//	days      = floor((reference - createdAt) / 24h)
//	timeBonus = (7 - days) * 10   when days <= 7, otherwise 0
//	score     = 3*likes + 5*comments + 0.1*views + timeBonus
//
// Rank sorts by score descending, then by creation time descending (newer
// first), then by ID ascending so equal items always come out in the same
// order.
//
// # Design Principles
//
//   - Deterministic: same inputs, same ordering
//   - Pure: no I/O, no hidden state, input slices are never mutated
//   - Per request: the time bonus decays continuously, so rankings are never cached
//
// # Usage
//
//	ranker := feed.NewRanker(time.Now)
//	ranked := ranker.Rank(items)
//	page := feed.Page(ranked, offset, limit)
package feed
