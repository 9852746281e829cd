// ABOUTME: Title normalization producing the lossy grouping key for activity records
// ABOUTME: Lowercase, subtitle strip, punctuation strip, whitespace collapse

package extract

import (
	"regexp"
	"strings"
)

var (
	// subtitleRE strips everything from the first colon or dash onward.
	// Differently subtitled editions of one work intentionally collide.
	subtitleRE = regexp.MustCompile(`(?s)[:\-–—].*$`)

	punctuationRE = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// NormalizeTitle canonicalizes a book title into the grouping key used
// across activity records. The mapping is many-to-one and idempotent.
//
// Known limitation: two distinct works sharing a normalized prefix after
// subtitle stripping collide into one group. The upstream convention makes
// this rare and the collision is accepted rather than guarded against.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}

	normalized := strings.ToLower(title)
	normalized = subtitleRE.ReplaceAllString(normalized, "")
	normalized = punctuationRE.ReplaceAllString(normalized, "")
	normalized = whitespaceRE.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}
