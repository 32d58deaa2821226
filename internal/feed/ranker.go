// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package feed

import (
	"math"
	"sort"
	"time"

	"github.com/tomtom215/lenscape/internal/metrics"
)

// Scoring weights.
const (
	LikeWeight    = 3.0
	CommentWeight = 5.0
	ViewWeight    = 0.1

	// RecencyWindowDays is the age in days after which the time bonus is zero.
	RecencyWindowDays = 7

	// RecencyBonusPerDay is the bonus for each day remaining in the window.
	RecencyBonusPerDay = 10.0
)

const day = 24 * time.Hour

// Item is a read-only engagement snapshot of a work.
type Item struct {
	// ID is the work identifier, used only to break exact ties.
	ID int64 `json:"id"`

	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	ViewCount    int64     `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Scored pairs an item with its score at a reference time.
type Scored struct {
	Item  Item    `json:"item"`
	Score float64 `json:"score"`
}

// DaysSince returns the whole number of days between createdAt and ref,
// rounded toward negative infinity.
func DaysSince(createdAt, ref time.Time) int {
	return int(math.Floor(float64(ref.Sub(createdAt)) / float64(day)))
}

// TimeBonus returns the recency bonus for an item of the given age in days.
func TimeBonus(days int) float64 {
	if days > RecencyWindowDays {
		return 0
	}
	return float64(RecencyWindowDays-days) * RecencyBonusPerDay
}

// Score computes the feed score of item at ref.
//
//nolint:gocritic // Item is a small value snapshot
func Score(item Item, ref time.Time) float64 {
	return LikeWeight*float64(item.LikeCount) +
		CommentWeight*float64(item.CommentCount) +
		ViewWeight*float64(item.ViewCount) +
		TimeBonus(DaysSince(item.CreatedAt, ref))
}

// Rank scores every item at ref and returns them highest score first.
// Ties are broken by CreatedAt (newer first) and then by ID (lower first).
// The input slice is not modified.
func Rank(items []Item, ref time.Time) []Scored {
	scored := make([]Scored, len(items))
	for i, item := range items {
		scored[i] = Scored{Item: item, Score: Score(item, ref)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Item.CreatedAt.Equal(b.Item.CreatedAt) {
			return a.Item.CreatedAt.After(b.Item.CreatedAt)
		}
		return a.Item.ID < b.Item.ID
	})

	return scored
}

// Page returns the [offset, offset+limit) window of a ranked list.
// Out-of-range offsets yield an empty slice.
func Page(ranked []Scored, offset, limit int) []Scored {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ranked) || limit <= 0 {
		return []Scored{}
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end]
}

// Ranker ranks against a clock and records ranking metrics.
type Ranker struct {
	now func() time.Time
}

// NewRanker creates a ranker using now as the reference time source.
// A nil now defaults to time.Now.
func NewRanker(now func() time.Time) *Ranker {
	if now == nil {
		now = time.Now
	}
	return &Ranker{now: now}
}

// Rank orders items using the current reference time.
func (r *Ranker) Rank(items []Item) []Scored {
	return r.RankAt(items, r.now())
}

// RankAt orders items against ref. Callers that already read the clock to
// select candidates pass the same instant here.
func (r *Ranker) RankAt(items []Item, ref time.Time) []Scored {
	start := time.Now()
	ranked := Rank(items, ref)
	metrics.RecordFeedRank(time.Since(start), len(items))
	return ranked
}

// Now returns the reference time the ranker would use.
func (r *Ranker) Now() time.Time {
	return r.now()
}
