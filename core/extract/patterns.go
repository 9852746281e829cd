// ABOUTME: Ordered pattern cascades for pulling structured facts out of feed text
// ABOUTME: Each cascade is tried in priority order and the first match wins

// Package extract provides the stateless pattern extractors that pull single
// facts (progress, author, title, cover, challenge counters) out of one text
// blob. Every extractor evaluates an ordered cascade of candidate patterns
// and returns the first success; ordering is a contract, not an accident,
// because broader patterns would otherwise shadow more specific ones.
package extract

import "regexp"

// NumericPattern pairs a regular expression with the interpretation of its
// numeric captures: one group is a direct percentage, two groups are a
// (current, total) pair converted via floor(current/total*100).
type NumericPattern struct {
	re    *regexp.Regexp
	arity int
}

// TitleProgressPatterns match reading progress inside an entry's headline.
// The bare percent form leads because upstream phrases it several ways
// ("is 45% done", "45% done with ..."), all containing the same token.
var TitleProgressPatterns = []NumericPattern{
	{regexp.MustCompile(`(\d+)%`), 1},
	{regexp.MustCompile(`(?i)is (\d+)% done`), 1},
	{regexp.MustCompile(`(?i)(\d+) percent`), 1},
	{regexp.MustCompile(`(?i)page (\d+) of (\d+)`), 2},
	{regexp.MustCompile(`(?i)is on page (\d+) of (\d+)`), 2},
}

// DescriptionProgressPatterns match progress inside an entry's description
// text. The percent forms here require a qualifier word so that unrelated
// numbers in review snippets don't read as progress.
var DescriptionProgressPatterns = []NumericPattern{
	{regexp.MustCompile(`(?i)(\d+)%\s*(?:complete|done|finished|read)`), 1},
	{regexp.MustCompile(`(?i)(\d+)\s*percent`), 1},
	{regexp.MustCompile(`(?i)page\s+(\d+)\s+of\s+(\d+)`), 2},
	{regexp.MustCompile(`(?i)(\d+)\s*/\s*(\d+)\s*pages`), 2},
	{regexp.MustCompile(`(?i)progress:?\s*(\d+)%`), 1},
}

// FeedChallengePatterns match yearly challenge counters in feed entry
// descriptions. All patterns capture (read, goal) in that order except the
// caller-validated plausibility which happens outside the cascade.
var FeedChallengePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)You have read (\d+) of (\d+) books`),
	regexp.MustCompile(`(?i)has read (\d+) of (\d+) books`),
	regexp.MustCompile(`(?i)read (\d+) of (\d+) books`),
	regexp.MustCompile(`(?i)(\d+) of (\d+) books.*(?:challenge|goal|\d{4})`),
	regexp.MustCompile(`(?i)(\d+)/(\d+) books`),
	regexp.MustCompile(`(?i)has read (\d+) books? toward.*?goal of (\d+) books?`),
}

// ProfileChallengePatterns match challenge counters in profile page text,
// most specific first. The loose trailing forms only run after the
// widget-style phrasings have failed.
var ProfileChallengePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)You have read (\d+) of (\d+) books`),
	regexp.MustCompile(`(?i)(\d+) of (\d+) books.*?(?:ahead of schedule|behind|on track)`),
	regexp.MustCompile(`(?i)(?:19|20)\d{2}.*?(\d+) of (\d+)`),
	regexp.MustCompile(`(?i)(\d+) of (\d+) books`),
	regexp.MustCompile(`(?i)(\d+)/(\d+) books`),
	regexp.MustCompile(`(?i)read (\d+).*?of (\d+)`),
}

// MatchPercent evaluates a progress cascade against text and returns the
// first matching pattern's percentage, clamped to [0, 100]. The boolean
// distinguishes "no pattern matched" from a genuine zero so callers choose
// their own default policy.
func MatchPercent(text string, cascade []NumericPattern) (int, bool) {
	for _, p := range cascade {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch p.arity {
		case 1:
			return clampPercent(atoi(m[1])), true
		case 2:
			current, total := atoi(m[1]), atoi(m[2])
			if total <= 0 {
				continue
			}
			return clampPercent(current * 100 / total), true
		}
	}
	return 0, false
}

// MatchCounterPair evaluates a challenge cascade against text. Each
// pattern's first match is offered to accept; a rejected pair discards that
// pattern and the cascade continues, so an implausible match never shadows
// a plausible one further down the list.
func MatchCounterPair(text string, cascade []*regexp.Regexp, accept func(read, goal int) bool) (int, int, bool) {
	for _, re := range cascade {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		read, goal := atoi(m[1]), atoi(m[2])
		if accept(read, goal) {
			return read, goal, true
		}
	}
	return 0, 0, false
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// atoi parses a digits-only capture. Captures come from \d+ groups, so the
// only possible failure is overflow, which clamping absorbs.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 1 << 30
		}
	}
	return n
}
