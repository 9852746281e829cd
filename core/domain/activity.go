// ABOUTME: ActivityRecord domain model represents one classified feed entry's extracted facts
// ABOUTME: Records are grouped by normalized title into BookGroups for fusion

package domain

import "time"

// ActivityKind classifies a feed entry's reading-related intent.
type ActivityKind string

const (
	// ActivityStarted marks a "started reading" entry.
	ActivityStarted ActivityKind = "started"

	// ActivityProgressUpdate marks an on-page / percent-done entry.
	ActivityProgressUpdate ActivityKind = "progress_update"

	// ActivityCurrentlyReading marks a bare "currently reading" entry.
	ActivityCurrentlyReading ActivityKind = "currently_reading"

	// ActivityUnknown marks an entry that matched no trigger phrase.
	// Such entries never enter a collection; the zero kind exists so
	// callers can represent "not classified" distinctly.
	ActivityUnknown ActivityKind = "unknown"
)

// ActivityRecord holds the facts extracted from a single feed entry.
// Records are created once during a collection pass and never mutated.
type ActivityRecord struct {
	// RawTitle is the book title as published in the entry
	RawTitle string

	// NormalizedTitle is the lossy grouping key derived from RawTitle
	NormalizedTitle string

	// Kind is the classified activity type
	Kind ActivityKind

	// Progress is the extracted reading progress, clamped to [0, 100]
	Progress int

	// Timestamp is the entry's published time; absent timestamps sort
	// older than any present one
	Timestamp *time.Time

	// Entry points back at the raw feed entry for secondary extraction
	// of author and cover data
	Entry *FeedEntry

	// FeedTitle is the full feed entry headline the record came from
	FeedTitle string
}

// BookGroup is the ordered set of activity records observed for one
// normalized title. Every record in a group shares the same
// NormalizedTitle; records keep feed order and are only re-sorted into a
// view during fusion, never in place.
type BookGroup struct {
	NormalizedTitle string
	Records         []ActivityRecord
}

// LatestTimestamp returns the most recent timestamp among the group's
// records, or nil if no record is timestamped.
func (g *BookGroup) LatestTimestamp() *time.Time {
	var latest *time.Time
	for i := range g.Records {
		ts := g.Records[i].Timestamp
		if ts == nil {
			continue
		}
		if latest == nil || ts.After(*latest) {
			latest = ts
		}
	}
	return latest
}
