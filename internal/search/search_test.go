package search

import (
	"testing"

	"stargaze/internal/domain"
)

func testStars() []domain.Star {
	return []domain.Star{
		{ID: "1", Name: "bubbletea", Description: "a powerful little TUI framework"},
		{ID: "2", Name: "lipgloss", Description: "style definitions for terminal layouts"},
		{ID: "3", Name: "viper", Description: "go configuration with fangs"},
	}
}

func TestRankEmptyQueryMatchesNothing(t *testing.T) {
	if got := Rank("", testStars()); got != nil {
		t.Fatalf("expected no matches for empty query, got %v", got)
	}
	if got := Rank("   ", testStars()); got != nil {
		t.Fatalf("expected no matches for blank query, got %v", got)
	}
}

func TestRankMatchesName(t *testing.T) {
	got := Rank("lipgl", testStars())
	if len(got) != 1 || got[0].Star.Name != "lipgloss" {
		t.Fatalf("expected lipgloss, got %v", got)
	}
}

func TestRankMatchesDescription(t *testing.T) {
	got := Rank("fangs", testStars())
	if len(got) != 1 || got[0].Star.Name != "viper" {
		t.Fatalf("expected viper via description, got %v", got)
	}
}

func TestRankIsCaseInsensitive(t *testing.T) {
	got := Rank("VIPER", testStars())
	if len(got) != 1 || got[0].Star.Name != "viper" {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

func TestRankOrdersBestFirst(t *testing.T) {
	stars := []domain.Star{
		{ID: "1", Name: "terminal-emulator"},
		{ID: "2", Name: "term"},
	}
	got := Rank("term", stars)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Star.ID != "2" {
		t.Errorf("exact name should rank first, got %s", got[0].Star.Name)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	stars := testStars()
	Rank("terminal", stars)
	if stars[0].ID != "1" || stars[2].ID != "3" {
		t.Error("input slice order changed")
	}
}

func TestBest(t *testing.T) {
	star, ok := Best("fangs", testStars())
	if !ok || star.Name != "viper" {
		t.Fatalf("expected viper, got %v ok=%v", star, ok)
	}
}

func TestBestNoMatch(t *testing.T) {
	if _, ok := Best("zzzzzz", testStars()); ok {
		t.Fatal("expected no best match")
	}
	if _, ok := Best("", testStars()); ok {
		t.Fatal("empty query must have no best match")
	}
}
