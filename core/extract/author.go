// ABOUTME: Author extraction using a three-tier cascade over one feed entry
// ABOUTME: Structured author link, then "by Name" in the title, then the author field

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"reading-display-api/core/domain"
)

var (
	// activityVerbRE strips the activity phrasing from a headline before
	// "by Name" matching so verbs don't bleed into the captured name.
	activityVerbRE = regexp.MustCompile(`(?i)(started reading|is currently reading|finished reading|is on page \d+ of \d+ of)`)

	// titleAuthorPatterns match an inline author in a cleaned headline,
	// most anchored first. The last pattern is a loose suffix catch for
	// headlines without a "by".
	titleAuthorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)'[^']+'\s+by\s+([^(]+?)(?:\s*\(|$)`),
		regexp.MustCompile(`(?i)by\s+([^(]+?)(?:\s*\(|$)`),
		regexp.MustCompile(`(?i)'[^']*'\s*(.+?)(?:\s*started|\s*is|\s*$)`),
	}

	// authorFieldPrefixRE trims the activity phrasing that upstream
	// sometimes prepends to the entry's author field.
	authorFieldPrefixRE = regexp.MustCompile(`(?i)^.*?(started reading|is currently reading)`)

	htmlTagRE    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// EntryAuthor extracts the book author from a feed entry using an ordered
// three-tier cascade. The first tier that yields a plausible name wins; the
// cascade short-circuits, so ties cannot occur.
func EntryAuthor(entry *domain.FeedEntry) (string, bool) {
	if entry == nil {
		return "", false
	}

	// Tier 1: a structured author-profile link inside the description is
	// the highest-confidence source.
	if entry.HasDescription() {
		if name, ok := authorFromLink(entry.Description); ok {
			return name, true
		}
	}

	// Tier 2: an inline "by Name" phrase in the headline.
	if name, ok := authorFromTitle(entry.Title); ok {
		return name, true
	}

	// Tier 3: the entry's own author field.
	if name, ok := authorFromField(entry.AuthorName); ok {
		return name, true
	}

	return "", false
}

func authorFromLink(description string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return "", false
	}

	var name string
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists || !strings.Contains(href, "/author/") {
			return true
		}
		name = strings.TrimSpace(sel.Text())
		return false
	})

	if len(name) > 1 && name != domain.UnknownAuthor {
		return name, true
	}
	return "", false
}

func authorFromTitle(title string) (string, bool) {
	cleaned := activityVerbRE.ReplaceAllString(title, "")

	for _, re := range titleAuthorPatterns {
		m := re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		name := cleanAuthorName(m[1])
		if plausibleName(name) {
			return name, true
		}
	}
	return "", false
}

func authorFromField(field string) (string, bool) {
	if field == "" {
		return "", false
	}

	text := htmlTagRE.ReplaceAllString(field, "")
	text = authorFieldPrefixRE.ReplaceAllString(text, "")

	if !strings.Contains(text, " by ") {
		return "", false
	}
	parts := strings.Split(text, " by ")
	name := strings.TrimSpace(parts[len(parts)-1])
	if plausibleName(name) {
		return name, true
	}
	return "", false
}

func cleanAuthorName(name string) string {
	name = htmlTagRE.ReplaceAllString(name, "")
	name = whitespaceRE.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// plausibleName accepts names with length in (1, 100); single characters
// are fragments, anything longer is swallowed surrounding text.
func plausibleName(name string) bool {
	return len(name) > 1 && len(name) < 100
}
