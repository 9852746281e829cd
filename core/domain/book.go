// ABOUTME: CanonicalBook domain model is the fused "current reading" record
// ABOUTME: Built wholesale by the fusion engine and replaced, never partially mutated

package domain

import "time"

// UnknownAuthor is the sentinel used when the author cascade yields nothing.
const UnknownAuthor = "Unknown Author"

// FallbackTitle is the title of the placeholder record served when no
// reading activity could be extracted.
const FallbackTitle = "No current book found"

// CanonicalBook is the single best-guess current reading record fused from
// multiple activity observations. The cache owns it for one TTL window.
type CanonicalBook struct {
	// Title is the longest raw title seen across the group
	Title string `json:"title"`

	// Author is the longest author name the cascade produced, or the
	// UnknownAuthor sentinel
	Author string `json:"author"`

	// Progress is the fused reading progress in [0, 100]
	Progress int `json:"progress"`

	// CoverURL is the first embedded cover image found, if any
	CoverURL string `json:"cover_url,omitempty"`

	// StartDate is the metadata anchor's timestamp
	StartDate *time.Time `json:"start_date,omitempty"`

	// UpdateDate is the timestamp of the record that won progress
	UpdateDate *time.Time `json:"update_date,omitempty"`

	// Challenge is the yearly challenge display string ("X of Y books"),
	// empty when the challenge lookup found nothing
	Challenge string `json:"challenge,omitempty"`

	// EntriesCount is how many records contributed to the fusion
	EntriesCount int `json:"entries_count"`

	// EntryKinds lists the contributing records' activity kinds, in the
	// fusion view's order (debug surface)
	EntryKinds []ActivityKind `json:"entry_kinds,omitempty"`

	// ProgressSource is the full feed headline of the record that won
	// progress (debug surface)
	ProgressSource string `json:"progress_source,omitempty"`
}

// FallbackBook returns the clearly labeled placeholder record served when
// the feed yields no reading signal. The display surface stays usable on
// total failure; this is not an error payload.
func FallbackBook() *CanonicalBook {
	return &CanonicalBook{
		Title:    FallbackTitle,
		Author:   "Check reading activity",
		Progress: 0,
	}
}

// IsFallback reports whether the record is the no-signal placeholder.
func (b *CanonicalBook) IsFallback() bool {
	return b != nil && b.Title == FallbackTitle
}
