package tui

import (
	"strings"
	"testing"

	"stargaze/internal/domain"
)

func listStars() []domain.Star {
	return []domain.Star{
		{ID: "1", Name: "alpha", URL: "https://x/alpha", Description: "first"},
		{ID: "2", Name: "beta", URL: "https://x/beta", Description: "second"},
		{ID: "3", Name: "gamma", URL: "https://x/gamma", Description: "third"},
	}
}

func newTestList() StarList {
	l := NewStarList()
	l.SetSize(80, 20)
	l.SetItems(listStars())
	return l
}

func TestStarListCursorBounds(t *testing.T) {
	l := newTestList()

	l.MoveUp(1)
	if star, _ := l.Selected(); star.ID != "1" {
		t.Errorf("k at top: expected 1, got %s", star.ID)
	}

	l.MoveBottom(1)
	if star, _ := l.Selected(); star.ID != "3" {
		t.Errorf("after G: expected 3, got %s", star.ID)
	}

	l.MoveDown(1)
	if star, _ := l.Selected(); star.ID != "3" {
		t.Errorf("j at bottom: expected 3, got %s", star.ID)
	}

	l.MoveTop(1)
	if star, _ := l.Selected(); star.ID != "1" {
		t.Errorf("after g: expected 1, got %s", star.ID)
	}
}

func TestStarListEmpty(t *testing.T) {
	l := NewStarList()
	l.SetSize(80, 20)
	l.SetItems(nil)

	if _, ok := l.Selected(); ok {
		t.Error("empty list must have no selection")
	}
	if !strings.Contains(l.View(false), "0 stars") {
		t.Error("empty list view should say 0 stars")
	}
}

func TestStarListFilter(t *testing.T) {
	l := newTestList()

	l.SetQuery("gam")
	if l.Len() != 1 {
		t.Fatalf("expected 1 visible, got %d", l.Len())
	}
	if star, _ := l.Selected(); star.ID != "3" {
		t.Errorf("expected gamma selected, got %s", star.ID)
	}

	l.SetQuery("")
	if l.Len() != 3 {
		t.Errorf("clearing the query must restore all items, got %d", l.Len())
	}
}

func TestStarListFilterNoMatches(t *testing.T) {
	l := newTestList()

	l.SetQuery("zzz")
	if l.Len() != 0 {
		t.Fatalf("expected no matches, got %d", l.Len())
	}
	if !strings.Contains(l.View(false), "no matches") {
		t.Error("expected a no-matches hint")
	}
}

func TestStarListSelectionStableAcrossSetItems(t *testing.T) {
	l := newTestList()
	l.MoveDown(1) // select beta

	// Reload with an extra item prepended; selection stays on beta's ID.
	reordered := append([]domain.Star{{ID: "0", Name: "zero", URL: "https://x/0"}}, listStars()...)
	l.SetItems(reordered)

	if star, _ := l.Selected(); star.ID != "2" {
		t.Errorf("selection should follow ID 2 across reload, got %s", star.ID)
	}
}

func TestStarListSelectionStableAcrossFilter(t *testing.T) {
	l := newTestList()
	l.MoveBottom(1) // gamma

	l.SetQuery("a") // matches all three
	if star, _ := l.Selected(); star.ID != "3" {
		t.Errorf("selection should stay on gamma, got %s", star.ID)
	}
}

func TestStarListViewShowsDescriptions(t *testing.T) {
	l := newTestList()

	with := l.View(true)
	if !strings.Contains(with, "first") {
		t.Error("descriptions enabled: expected description text")
	}

	without := l.View(false)
	if strings.Contains(without, "first") {
		t.Error("descriptions disabled: description text should be absent")
	}
}

func TestStarListSelectID(t *testing.T) {
	l := newTestList()

	if !l.SelectID("3") {
		t.Fatal("expected to find ID 3")
	}
	if star, _ := l.Selected(); star.ID != "3" {
		t.Errorf("expected gamma selected, got %s", star.ID)
	}

	if l.SelectID("missing") {
		t.Error("unknown ID must not match")
	}
	if star, _ := l.Selected(); star.ID != "3" {
		t.Error("a failed SelectID must not move the cursor")
	}
}

func TestStarListSortByName(t *testing.T) {
	l := NewStarList()
	l.SetSize(80, 20)
	l.SetItems([]domain.Star{
		{ID: "1", Name: "zeta", URL: "https://x/z"},
		{ID: "2", Name: "alpha", URL: "https://x/a"},
		{ID: "3", Name: "Mars", URL: "https://x/m"},
	})

	if !l.ToggleSortByName() {
		t.Fatal("first toggle must enable name order")
	}
	view := l.View(false)
	if !(strings.Index(view, "alpha") < strings.Index(view, "Mars") &&
		strings.Index(view, "Mars") < strings.Index(view, "zeta")) {
		t.Error("expected case-insensitive alphabetical order")
	}
	if star, _ := l.Selected(); star.ID != "1" {
		t.Errorf("selection should stay on zeta across the sort, got %s", star.ID)
	}

	if l.ToggleSortByName() {
		t.Fatal("second toggle must restore feed order")
	}
	view = l.View(false)
	if strings.Index(view, "zeta") > strings.Index(view, "alpha") {
		t.Error("expected feed order after toggling back")
	}
}

func TestStarListSortDoesNotMutateFeedOrder(t *testing.T) {
	stars := []domain.Star{
		{ID: "1", Name: "zeta", URL: "https://x/z"},
		{ID: "2", Name: "alpha", URL: "https://x/a"},
	}
	l := NewStarList()
	l.SetSize(80, 20)
	l.SetItems(stars)

	l.ToggleSortByName()
	if stars[0].Name != "zeta" {
		t.Error("sorting must not reorder the caller's slice")
	}
}

func TestStarListScrollWindow(t *testing.T) {
	l := NewStarList()
	l.SetSize(80, 3) // room for 3 single-row items

	stars := make([]domain.Star, 10)
	for i := range stars {
		stars[i] = domain.Star{ID: string(rune('a' + i)), Name: "repo" + string(rune('a'+i)), URL: "https://x"}
	}
	l.SetItems(stars)

	l.MoveBottom(1)
	view := l.View(false)
	if !strings.Contains(view, "repoj") {
		t.Error("window should follow the cursor to the bottom")
	}
	if strings.Contains(view, "repoa") {
		t.Error("items scrolled out of the window should not render")
	}
}
