// ABOUTME: FeedEntry domain model represents one item in the user's activity feed
// ABOUTME: Optional fields default to absent rather than relying on attribute checks

package domain

import "time"

// FeedEntry is one item in the externally hosted activity stream. Title is
// the only field the upstream reliably provides; everything else is optional.
type FeedEntry struct {
	// Title is the entry's headline, e.g. "Jane started reading 'Dune'"
	Title string

	// Description is the entry's HTML fragment, when present
	Description string

	// AuthorName is the feed-level author field, when present
	AuthorName string

	// Published is the source-provided timestamp, when present
	Published *time.Time
}

// HasDescription reports whether the entry carries an HTML description.
func (e *FeedEntry) HasDescription() bool {
	return e != nil && e.Description != ""
}
