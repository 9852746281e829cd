// ABOUTME: Reading service orchestrates the cache-gated extraction pipeline
// ABOUTME: Fetch feed, collect records, fuse, attach challenge, cache the result

// Package reading wires the extraction pipeline together behind the book
// cache slot: a request that hits a valid cache entry never touches the
// feed; a miss walks fetch -> collect -> fuse -> challenge and caches
// whatever came out, fallback included, so failures are rate-bounded too.
package reading

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"reading-display-api/core/activity"
	"reading-display-api/core/domain"
	"reading-display-api/core/interfaces"
)

// bookCacheKey is the book slot's fixed cache key.
const bookCacheKey = "reading:current"

// ChallengeResolver is the challenge service's surface as the reading
// service sees it.
type ChallengeResolver interface {
	Resolve(ctx context.Context, entries []*domain.FeedEntry) (*domain.ChallengeState, bool)
	Invalidate(ctx context.Context) error
}

// Service produces the current reading record.
type Service struct {
	deps      interfaces.Dependencies
	challenge ChallengeResolver
	feedURL   string
	ttl       time.Duration
}

// NewService creates a reading service. challenge may be nil, in which case
// fused records carry no challenge string.
func NewService(deps interfaces.Dependencies, challenge ChallengeResolver, feedURL string, ttl time.Duration) *Service {
	return &Service{
		deps:      deps,
		challenge: challenge,
		feedURL:   feedURL,
		ttl:       ttl,
	}
}

// CurrentReading returns the fused current reading record, serving from the
// book cache slot when it's still valid. Upstream failures degrade to the
// labeled fallback record; no error reaches the caller from a bad feed.
func (s *Service) CurrentReading(ctx context.Context) *domain.CanonicalBook {
	if book, ok := s.cachedBook(ctx); ok {
		return book
	}

	book := s.refresh(ctx)
	s.cacheBook(ctx, book)
	return book
}

// ClearCache resets both cache slots.
func (s *Service) ClearCache(ctx context.Context) error {
	var errs []error
	if s.deps.Cache != nil {
		if err := s.deps.Cache.Delete(ctx, bookCacheKey); err != nil {
			errs = append(errs, err)
		}
	}
	if s.challenge != nil {
		if err := s.challenge.Invalidate(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RefreshChallenge drops the cached challenge result and performs a fresh
// lookup. Used by the challenge test endpoint.
func (s *Service) RefreshChallenge(ctx context.Context) (*domain.ChallengeState, bool) {
	if s.challenge == nil {
		return nil, false
	}
	_ = s.challenge.Invalidate(ctx)

	// A failed feed fetch still allows the profile strategy to run.
	entries, err := s.fetchEntries(ctx)
	if err != nil {
		entries = nil
	}
	return s.challenge.Resolve(ctx, entries)
}

// DebugInfo is the uncached pipeline state exposed by the debug endpoints.
type DebugInfo struct {
	Book       *domain.CanonicalBook
	Entries    []*domain.FeedEntry
	Groups     []*domain.BookGroup
	BookCached bool
}

// Inspect runs a fresh collection pass without touching the cache slots and
// reports whether a cached book currently exists.
func (s *Service) Inspect(ctx context.Context) (*DebugInfo, error) {
	info := &DebugInfo{}
	if _, ok := s.cachedBook(ctx); ok {
		info.BookCached = true
	}

	entries, err := s.fetchEntries(ctx)
	if err != nil {
		return info, err
	}

	info.Entries = entries
	info.Groups = activity.Collect(entries)
	if book, ok := activity.Fuse(info.Groups); ok {
		info.Book = book
	}
	return info, nil
}

func (s *Service) refresh(ctx context.Context) *domain.CanonicalBook {
	entries, err := s.fetchEntries(ctx)
	if err != nil {
		s.logError("Feed fetch failed", err)
		return domain.FallbackBook()
	}

	groups := activity.Collect(entries)
	book, ok := activity.Fuse(groups)
	if !ok {
		if s.deps.Logger != nil {
			s.deps.Logger.Info("No reading activity in feed", map[string]interface{}{
				"entries": len(entries),
			})
		}
		return domain.FallbackBook()
	}

	if s.challenge != nil {
		if state, found := s.challenge.Resolve(ctx, entries); found {
			book.Challenge = state.String()
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Fused current reading record", map[string]interface{}{
			"title":    book.Title,
			"author":   book.Author,
			"progress": book.Progress,
			"entries":  book.EntriesCount,
		})
	}
	return book
}

// fetchEntries retrieves and parses the activity feed.
func (s *Service) fetchEntries(ctx context.Context) ([]*domain.FeedEntry, error) {
	if s.feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	parsedURL, err := url.Parse(s.feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid feed URL format")
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, errors.New("feed returned non-200 status code")
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	return parseFeedContent(bodyBytes)
}

// parseFeedContent parses feed content from bytes into domain entries,
// keeping the source's newest-first order.
func parseFeedContent(content []byte) ([]*domain.FeedEntry, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.FeedEntry, 0, len(parsedFeed.Items))
	for _, item := range parsedFeed.Items {
		entries = append(entries, convertItem(item))
	}
	return entries, nil
}

// convertItem converts a gofeed item to a domain entry.
func convertItem(item *gofeed.Item) *domain.FeedEntry {
	entry := &domain.FeedEntry{
		Title:       item.Title,
		Description: item.Description,
	}

	if item.PublishedParsed != nil {
		entry.Published = item.PublishedParsed
	} else if item.Published != "" {
		if t := parseTime(item.Published); !t.IsZero() {
			entry.Published = &t
		}
	}

	if item.Author != nil && item.Author.Name != "" {
		entry.AuthorName = item.Author.Name
	}

	return entry
}

// parseTime attempts to parse time from the formats the provider has been
// seen emitting.
func parseTime(timeStr string) time.Time {
	formats := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC3339,
		time.RFC822,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (s *Service) cachedBook(ctx context.Context) (*domain.CanonicalBook, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, bookCacheKey)
	if err != nil || data == nil {
		return nil, false
	}

	var book domain.CanonicalBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, false
	}
	return &book, true
}

func (s *Service) cacheBook(ctx context.Context, book *domain.CanonicalBook) {
	if s.deps.Cache == nil || book == nil {
		return
	}

	data, err := json.Marshal(book)
	if err != nil {
		return
	}
	// Cache errors are non-fatal; the next request just refreshes again.
	_ = s.deps.Cache.Set(ctx, bookCacheKey, data, s.ttl)
}

func (s *Service) logError(msg string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Error(msg, map[string]interface{}{
		"error": err.Error(),
	})
}
