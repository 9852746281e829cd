// ABOUTME: Profile page scraper producing visible text for challenge extraction
// ABOUTME: Uses colly with a browser User-Agent; the upstream serves bots differently

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"reading-display-api/core/interfaces"
)

const (
	profileUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// challengeWidgetSelector targets the provider's challenge widget; when
	// present its text is scanned before the rest of the page.
	challengeWidgetSelector = ".challengeStat, .readingChallenge"
)

// ProfileScraper fetches the user's profile page and extracts its visible
// text. It implements challenge.ProfileSource.
type ProfileScraper struct {
	url     string
	timeout time.Duration
	logger  interfaces.Logger
}

// NewProfileScraper creates a profile scraper for the given profile URL.
func NewProfileScraper(url string, timeout time.Duration, logger interfaces.Logger) *ProfileScraper {
	return &ProfileScraper{
		url:     url,
		timeout: timeout,
		logger:  logger,
	}
}

// ProfileText fetches the profile page and returns its visible text, with
// the challenge widget's text first so widget counters match before any
// coincidental number pairs elsewhere on the page.
func (s *ProfileScraper) ProfileText(ctx context.Context) (string, error) {
	if s.url == "" {
		return "", errors.New("profile URL not configured")
	}

	c := colly.NewCollector(
		colly.UserAgent(profileUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(s.timeout)

	var widget, body strings.Builder
	var fetchErr error

	c.OnHTML(challengeWidgetSelector, func(e *colly.HTMLElement) {
		widget.WriteString(e.Text)
		widget.WriteString("\n")
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		body.WriteString(e.Text)
	})
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(s.url); err != nil {
		return "", err
	}
	if fetchErr != nil {
		return "", fetchErr
	}

	text := widget.String() + body.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("profile page yielded no text")
	}

	if s.logger != nil {
		s.logger.Debug("Profile page fetched", map[string]interface{}{
			"bytes":      len(text),
			"has_widget": widget.Len() > 0,
		})
	}

	return text, nil
}
