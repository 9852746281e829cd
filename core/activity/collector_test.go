package activity

import (
	"testing"

	"reading-display-api/core/domain"
)

func TestCollect_GroupsByNormalizedTitle(t *testing.T) {
	entries := []*domain.FeedEntry{
		{Title: "Jane started reading 'Project Hail Mary: A Novel'"},
		{Title: "Jane is on page 100 of 400 of 'Project Hail Mary'"},
	}

	groups := Collect(entries)

	if len(groups) != 1 {
		t.Fatalf("Collect produced %d groups, want 1 (subtitled editions collide)", len(groups))
	}
	if groups[0].NormalizedTitle != "project hail mary" {
		t.Errorf("NormalizedTitle = %q, want %q", groups[0].NormalizedTitle, "project hail mary")
	}
	if len(groups[0].Records) != 2 {
		t.Errorf("group holds %d records, want 2", len(groups[0].Records))
	}
}

func TestCollect_AllRecordsInGroupShareNormalizedTitle(t *testing.T) {
	entries := []*domain.FeedEntry{
		{Title: "Jane started reading 'Dune'"},
		{Title: "Jane started reading 'Project Hail Mary'"},
		{Title: "Jane is on page 10 of 300 of 'Dune'"},
	}

	groups := Collect(entries)

	for _, g := range groups {
		for _, r := range g.Records {
			if r.NormalizedTitle != g.NormalizedTitle {
				t.Errorf("record key %q differs from group key %q", r.NormalizedTitle, g.NormalizedTitle)
			}
		}
	}
}

func TestCollect_PreservesFirstSeenGroupOrder(t *testing.T) {
	entries := []*domain.FeedEntry{
		{Title: "Jane started reading 'Dune'"},
		{Title: "Jane started reading 'Project Hail Mary'"},
		{Title: "Jane started reading 'Circe'"},
	}

	groups := Collect(entries)

	want := []string{"dune", "project hail mary", "circe"}
	if len(groups) != len(want) {
		t.Fatalf("Collect produced %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.NormalizedTitle != want[i] {
			t.Errorf("group[%d] = %q, want %q", i, g.NormalizedTitle, want[i])
		}
	}
}

func TestCollect_SkipsNonReadingEntries(t *testing.T) {
	entries := []*domain.FeedEntry{
		{Title: "Jane added 'Dune' to her shelf"},
		{Title: "Jane rated a book 5 stars"},
		{Title: "Jane started reading 'Dune'"},
	}

	groups := Collect(entries)

	if len(groups) != 1 {
		t.Fatalf("Collect produced %d groups, want 1", len(groups))
	}
	if len(groups[0].Records) != 1 {
		t.Errorf("group holds %d records, want 1", len(groups[0].Records))
	}
}

func TestCollect_EmptyFeed(t *testing.T) {
	groups := Collect(nil)

	if len(groups) != 0 {
		t.Errorf("Collect produced %d groups for an empty feed, want 0", len(groups))
	}
}
