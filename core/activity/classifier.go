// ABOUTME: Entry classifier maps one feed entry to an activity record skeleton
// ABOUTME: Trigger phrases are tested in priority order; unmatched entries are skipped

// Package activity turns a raw feed into one canonical reading record: the
// classifier tags individual entries, the collector groups them by
// normalized title, and the fusion engine reconciles each group's noisy,
// partially overlapping observations.
package activity

import (
	"regexp"
	"strings"

	"reading-display-api/core/domain"
	"reading-display-api/core/extract"
)

var (
	quotedTitleRE = regexp.MustCompile(`'([^']+)'`)

	// progressTitleFallbackRE recovers the book title from headlines
	// without a quoted title, by stripping the activity verb prefix.
	progressTitleFallbackRE = regexp.MustCompile(`(?i)(?:is on page \d+ of \d+ of|is currently reading|updated (?:her|his|their) progress on|% done with)\s*(.+?)(?:\s*by|\s*$)`)
)

// progressTriggers are the phrases marking a progress-update entry. They are
// only consulted after "started reading" has been ruled out; the broader
// "is currently reading" would otherwise swallow start events.
var progressTriggers = []string{
	"is on page",
	"is currently reading",
	"updated her progress",
	"updated his progress",
	"% done",
}

// Classify inspects one feed entry and produces an activity record. The
// boolean is false for entries that match no trigger phrase; most feed
// entries are not reading events at all and are silently skipped rather
// than recorded as unknown.
func Classify(entry *domain.FeedEntry) (domain.ActivityRecord, bool) {
	if entry == nil || entry.Title == "" {
		return domain.ActivityRecord{}, false
	}

	titleLower := strings.ToLower(entry.Title)

	// "started reading" must be checked before the progress group: a start
	// event contains no progress signal and must not be miscategorized.
	if strings.Contains(titleLower, "started reading") {
		bookTitle, ok := quotedTitle(entry.Title)
		if !ok {
			return domain.ActivityRecord{}, false
		}
		return newRecord(entry, bookTitle, domain.ActivityStarted, 0), true
	}

	if containsAny(titleLower, progressTriggers) {
		bookTitle, ok := progressEntryTitle(entry.Title)
		if !ok {
			return domain.ActivityRecord{}, false
		}
		// Unmatched progress defaults to 0 here: a progress-update entry
		// whose number we failed to parse still marks reading activity.
		progress, _ := extract.EntryProgress(entry)
		return newRecord(entry, bookTitle, domain.ActivityProgressUpdate, progress), true
	}

	if strings.Contains(titleLower, "currently reading") {
		bookTitle, ok := quotedTitle(entry.Title)
		if !ok {
			return domain.ActivityRecord{}, false
		}
		progress, _ := extract.EntryProgress(entry)
		return newRecord(entry, bookTitle, domain.ActivityCurrentlyReading, progress), true
	}

	return domain.ActivityRecord{}, false
}

func newRecord(entry *domain.FeedEntry, bookTitle string, kind domain.ActivityKind, progress int) domain.ActivityRecord {
	return domain.ActivityRecord{
		RawTitle:  bookTitle,
		Kind:      kind,
		Progress:  progress,
		Timestamp: entry.Published,
		Entry:     entry,
		FeedTitle: entry.Title,
	}
}

// quotedTitle extracts the single-quoted book title from a headline.
func quotedTitle(title string) (string, bool) {
	m := quotedTitleRE.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// progressEntryTitle prefers the quoted form and falls back to the
// verb-stripped suffix.
func progressEntryTitle(title string) (string, bool) {
	if t, ok := quotedTitle(title); ok {
		return t, true
	}
	m := progressTitleFallbackRE.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	t := strings.TrimSpace(m[1])
	if t == "" {
		return "", false
	}
	return t, true
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
