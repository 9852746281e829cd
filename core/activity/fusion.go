// ABOUTME: Fusion engine reconciles a group's activity records into one canonical book
// ABOUTME: Pure function over already-collected records; no I/O

package activity

import (
	"sort"

	"reading-display-api/core/domain"
	"reading-display-api/core/extract"
)

// Fuse selects the most recently active book among the groups and fuses its
// observations into one canonical record. The boolean is false when groups
// is empty. Given fixed inputs the output is identical across runs: group
// order breaks timestamp ties and a stable sort orders the fusion view.
func Fuse(groups []*domain.BookGroup) (*domain.CanonicalBook, bool) {
	selected := selectGroup(groups)
	if selected == nil {
		return nil, false
	}

	view := sortedView(selected.Records)

	// Progress: trust the maximum seen. A nonzero update beats the zero a
	// "started" record carries, so monotonically increasing progress wins.
	bestProgress := 0
	var progressRec *domain.ActivityRecord
	for i := range view {
		if view[i].Progress > bestProgress {
			bestProgress = view[i].Progress
			progressRec = &view[i]
		}
	}
	// All-zero group (e.g. a lone "started reading" entry): the newest
	// record anchors progress and the update date.
	if progressRec == nil {
		progressRec = &view[0]
	}

	// Metadata anchor: the first "started" record supplies the start date.
	var anchor *domain.ActivityRecord
	for i := range view {
		if view[i].Kind == domain.ActivityStarted {
			anchor = &view[i]
			break
		}
	}
	if anchor == nil {
		anchor = &view[0]
	}

	book := &domain.CanonicalBook{
		Title:          longestTitle(view, progressRec.RawTitle),
		Author:         bestAuthor(view),
		Progress:       bestProgress,
		StartDate:      anchor.Timestamp,
		UpdateDate:     progressRec.Timestamp,
		EntriesCount:   len(view),
		EntryKinds:     kinds(view),
		ProgressSource: progressRec.FeedTitle,
	}

	if cover, ok := firstCover(view); ok {
		book.CoverURL = cover
	}

	return book, true
}

// selectGroup picks the group whose latest record timestamp is most recent.
// Timestampless groups lose to any timestamped group; when nothing is
// timestamped the first group encountered is kept.
func selectGroup(groups []*domain.BookGroup) *domain.BookGroup {
	var selected *domain.BookGroup
	for _, g := range groups {
		if len(g.Records) == 0 {
			continue
		}
		if selected == nil {
			selected = g
			continue
		}
		lt := g.LatestTimestamp()
		st := selected.LatestTimestamp()
		if lt != nil && (st == nil || lt.After(*st)) {
			selected = g
		}
	}
	return selected
}

// sortedView returns the records newest first without mutating the group.
// The sort is stable so untimestamped records keep their feed order at the
// tail.
func sortedView(records []domain.ActivityRecord) []domain.ActivityRecord {
	view := make([]domain.ActivityRecord, len(records))
	copy(view, records)

	sort.SliceStable(view, func(i, j int) bool {
		ti, tj := view[i].Timestamp, view[j].Timestamp
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})

	return view
}

// longestTitle picks the longest raw title in the view; longer titles are
// less likely to be truncated abbreviations.
func longestTitle(view []domain.ActivityRecord, initial string) string {
	best := initial
	for i := range view {
		if len(view[i].RawTitle) > len(best) {
			best = view[i].RawTitle
		}
	}
	return best
}

// bestAuthor runs the author cascade against every record's entry, then
// picks the longest distinct result; longer names are more likely to be a
// full "First Last" than a fragment.
func bestAuthor(view []domain.ActivityRecord) string {
	seen := make(map[string]struct{})
	best := ""
	for i := range view {
		name, ok := extract.EntryAuthor(view[i].Entry)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return domain.UnknownAuthor
	}
	return best
}

// firstCover scans the view for the first embedded cover image.
func firstCover(view []domain.ActivityRecord) (string, bool) {
	for i := range view {
		entry := view[i].Entry
		if entry == nil || !entry.HasDescription() {
			continue
		}
		if url, ok := extract.CoverURL(entry.Description); ok {
			return url, true
		}
	}
	return "", false
}

func kinds(view []domain.ActivityRecord) []domain.ActivityKind {
	out := make([]domain.ActivityKind, len(view))
	for i := range view {
		out[i] = view[i].Kind
	}
	return out
}
