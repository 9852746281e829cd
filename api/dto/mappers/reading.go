// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Formats dates and derives challenge percent for the display device

package mappers

import (
	"regexp"
	"strconv"
	"time"

	"reading-display-api/api/dto/responses"
	"reading-display-api/core/domain"
	"reading-display-api/core/reading"
)

const (
	// displayDateFormat is what the device renders for start/update dates
	displayDateFormat = "Jan 02, 2006"

	// clockFormat is the compact server-time stamp in the payload
	clockFormat = "01/02 15:04"

	// unknownDate is shown when a record carries no timestamp
	unknownDate = "Unknown"
)

// challengeSummaryRE parses the "X of Y books" display string back into
// counters for the percent field.
var challengeSummaryRE = regexp.MustCompile(`(\d+) of (\d+) books`)

// ToDisplayDataResponse converts a fused reading record to the display payload
func ToDisplayDataResponse(book *domain.CanonicalBook, now time.Time) *responses.DisplayDataResponse {
	if book == nil {
		book = domain.FallbackBook()
	}

	return &responses.DisplayDataResponse{
		Title:                    book.Title,
		Author:                   book.Author,
		Progress:                 book.Progress,
		CoverURL:                 book.CoverURL,
		StartDate:                formatDate(book.StartDate),
		UpdateDate:               formatDate(book.UpdateDate),
		Challenge:                book.Challenge,
		ChallengeProgressPercent: ChallengeProgressPercent(book.Challenge),
		EntriesCount:             book.EntriesCount,
		CurrentTime:              now.Format(clockFormat),
	}
}

// ChallengeProgressPercent derives a completion percent from the challenge
// display string. Returns 0 when the string is empty or malformed.
func ChallengeProgressPercent(challenge string) int {
	m := challengeSummaryRE.FindStringSubmatch(challenge)
	if m == nil {
		return 0
	}

	read, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	goal, err := strconv.Atoi(m[2])
	if err != nil || goal <= 0 {
		return 0
	}

	percent := read * 100 / goal
	if percent > 100 {
		percent = 100
	}
	return percent
}

// ToDebugResponse converts pipeline debug state to the debug payload
func ToDebugResponse(info *reading.DebugInfo, now time.Time) *responses.DebugResponse {
	resp := &responses.DebugResponse{
		BookCached: info.BookCached,
		Groups:     make([]responses.GroupResponse, 0, len(info.Groups)),
	}

	if info.Book != nil {
		resp.Book = ToDisplayDataResponse(info.Book, now)
	}

	for _, group := range info.Groups {
		resp.Groups = append(resp.Groups, toGroupResponse(group))
	}

	return resp
}

func toGroupResponse(group *domain.BookGroup) responses.GroupResponse {
	gr := responses.GroupResponse{
		NormalizedTitle: group.NormalizedTitle,
		Records:         len(group.Records),
		Kinds:           make([]string, 0, len(group.Records)),
	}

	for i := range group.Records {
		gr.Kinds = append(gr.Kinds, string(group.Records[i].Kind))
	}

	if ts := group.LatestTimestamp(); ts != nil {
		gr.LatestTimestamp = ts.Format(time.RFC3339)
	}

	return gr
}

func formatDate(t *time.Time) string {
	if t == nil {
		return unknownDate
	}
	return t.Format(displayDateFormat)
}
