// ABOUTME: Response DTOs for reading display API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// DisplayDataResponse is the payload rendered by the display device. Every
// field is a formatted string or small integer; the device does no parsing
// beyond JSON.
type DisplayDataResponse struct {
	Title                    string `json:"title" doc:"Book title, or a fallback label when nothing is being read"`
	Author                   string `json:"author" doc:"Book author"`
	Progress                 int    `json:"progress" doc:"Reading progress percent (0-100)"`
	CoverURL                 string `json:"cover_url,omitempty" doc:"Book cover image URL"`
	StartDate                string `json:"start_date" doc:"When the book was started, or Unknown"`
	UpdateDate               string `json:"update_date" doc:"Most recent activity date, or Unknown"`
	Challenge                string `json:"challenge,omitempty" doc:"Yearly challenge summary, e.g. '12 of 30 books'"`
	ChallengeProgressPercent int    `json:"challenge_progress_percent" doc:"Challenge completion percent (0-100)"`
	EntriesCount             int    `json:"entries_count" doc:"Number of activity records fused into this payload"`
	CurrentTime              string `json:"current_time" doc:"Server time the payload was generated"`
}

// DebugResponse reports the uncached pipeline state
type DebugResponse struct {
	Book       *DisplayDataResponse `json:"book" doc:"Freshly fused record, bypassing the cache"`
	BookCached bool                 `json:"book_cached" doc:"Whether a cached record currently exists"`
	Groups     []GroupResponse      `json:"groups" doc:"Per-book record groups found in the feed"`
}

// GroupResponse summarizes one book's group of activity records
type GroupResponse struct {
	NormalizedTitle string   `json:"normalized_title" doc:"Grouping key derived from the title"`
	Records         int      `json:"records" doc:"Number of records in the group"`
	Kinds           []string `json:"kinds" doc:"Activity kinds present in the group"`
	LatestTimestamp string   `json:"latest_timestamp,omitempty" doc:"Newest record timestamp in the group"`
}

// DebugEntriesResponse lists the raw feed entries and how each classified
type DebugEntriesResponse struct {
	Total   int             `json:"total" doc:"Number of entries in the feed"`
	Entries []EntryResponse `json:"entries" doc:"Per-entry classification results"`
}

// EntryResponse is one raw feed entry with its classification
type EntryResponse struct {
	Title          string `json:"title" doc:"Raw entry title"`
	AuthorName     string `json:"author_name,omitempty" doc:"Feed-level author field"`
	Published      string `json:"published,omitempty" doc:"Entry publication time"`
	HasDescription bool   `json:"has_description" doc:"Whether the entry carries an HTML description"`
	Kind           string `json:"kind" doc:"Classified activity kind, or skipped"`
	Progress       int    `json:"progress" doc:"Progress percent extracted from the entry"`
}

// ChallengeResponse reports the result of a forced challenge lookup
type ChallengeResponse struct {
	Found     bool   `json:"found" doc:"Whether a challenge counter was located"`
	Challenge string `json:"challenge,omitempty" doc:"Challenge summary when found"`
	BooksRead int    `json:"books_read" doc:"Books finished so far"`
	BooksGoal int    `json:"books_goal" doc:"Yearly goal"`
}

// ClearCacheResponse confirms a cache reset
type ClearCacheResponse struct {
	Status string `json:"status" doc:"Operation result"`
}
