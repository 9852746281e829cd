// ABOUTME: Progress extraction from a feed entry's title and description
// ABOUTME: Title patterns run before description patterns; first match wins

package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"reading-display-api/core/domain"
)

// EntryProgress extracts the reading progress percentage from a feed entry,
// checking the headline first and the description's visible text second.
// The boolean is false when neither cascade matched; callers that treat
// absence as zero do so explicitly.
func EntryProgress(entry *domain.FeedEntry) (int, bool) {
	if entry == nil {
		return 0, false
	}

	if p, ok := MatchPercent(entry.Title, TitleProgressPatterns); ok {
		return p, true
	}

	if entry.HasDescription() {
		if p, ok := MatchPercent(DescriptionText(entry.Description), DescriptionProgressPatterns); ok {
			return p, true
		}
	}

	return 0, false
}

// DescriptionText strips an HTML fragment down to its visible text. Parse
// failures fall back to the raw input so a malformed fragment still gets
// pattern-scanned rather than dropped.
func DescriptionText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}
