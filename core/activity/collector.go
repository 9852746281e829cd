// ABOUTME: Entry collector walks the feed, classifies entries, and groups records
// ABOUTME: Groups keep first-seen order so downstream selection is deterministic

package activity

import (
	"reading-display-api/core/domain"
	"reading-display-api/core/extract"
)

// Collect walks feed entries in feed order (newest first, as provided by
// the source), classifies each, and groups the resulting records by
// normalized title. Group order is first-seen order, which keeps the
// fusion engine's no-timestamp fallback stable across runs.
func Collect(entries []*domain.FeedEntry) []*domain.BookGroup {
	groups := make([]*domain.BookGroup, 0)
	index := make(map[string]*domain.BookGroup)

	for _, entry := range entries {
		record, ok := Classify(entry)
		if !ok {
			continue
		}

		record.NormalizedTitle = extract.NormalizeTitle(record.RawTitle)

		group, exists := index[record.NormalizedTitle]
		if !exists {
			group = &domain.BookGroup{NormalizedTitle: record.NormalizedTitle}
			index[record.NormalizedTitle] = group
			groups = append(groups, group)
		}
		group.Records = append(group.Records, record)
	}

	return groups
}
