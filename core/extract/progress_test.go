package extract

import (
	"testing"

	"reading-display-api/core/domain"
)

func TestEntryProgress_FromTitle(t *testing.T) {
	entry := &domain.FeedEntry{Title: "Jane is on page 150 of 300 of 'Dune'"}

	p, ok := EntryProgress(entry)

	if !ok {
		t.Fatal("EntryProgress should match the title")
	}
	if p != 50 {
		t.Errorf("EntryProgress returned %d, want 50", p)
	}
}

func TestEntryProgress_TitleBeatsDescription(t *testing.T) {
	entry := &domain.FeedEntry{
		Title:       "Jane is 40% done with 'Dune'",
		Description: "<p>progress: 90%</p>",
	}

	p, _ := EntryProgress(entry)

	if p != 40 {
		t.Errorf("title cascade should win, got %d", p)
	}
}

func TestEntryProgress_FallsBackToDescription(t *testing.T) {
	entry := &domain.FeedEntry{
		Title:       "Jane updated her progress on 'Dune'",
		Description: "<p>Jane is on page <b>150</b> of 300</p>",
	}

	p, ok := EntryProgress(entry)

	if !ok {
		t.Fatal("EntryProgress should match the description text")
	}
	if p != 50 {
		t.Errorf("EntryProgress returned %d, want 50", p)
	}
}

func TestEntryProgress_NotFound(t *testing.T) {
	entry := &domain.FeedEntry{Title: "Jane started reading 'Dune'"}

	if _, ok := EntryProgress(entry); ok {
		t.Error("EntryProgress should report not-found, not zero")
	}
}

func TestEntryProgress_NilEntry(t *testing.T) {
	if _, ok := EntryProgress(nil); ok {
		t.Error("EntryProgress should report not-found for nil entry")
	}
}

func TestDescriptionText_StripsMarkup(t *testing.T) {
	got := DescriptionText("<p>page <b>150</b> of 300</p>")

	if got != "page 150 of 300" {
		t.Errorf("DescriptionText returned %q", got)
	}
}
