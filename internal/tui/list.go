package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"stargaze/internal/domain"
	"stargaze/internal/tui/styles"
)

// StarList is a scrollable, filterable list of stars. Selection is
// tracked by item ID so the highlighted row stays on the same star
// across filter changes and reloads.
type StarList struct {
	items   []domain.Star // full set, feed order
	visible []domain.Star // after filter and sort
	query   string

	sortByName bool

	cursor int
	offset int
	width  int
	height int
}

// NewStarList creates an empty list
func NewStarList() StarList {
	return StarList{}
}

// SetItems replaces the list contents, keeping the selection on the
// same ID when it survives the swap.
func (l *StarList) SetItems(items []domain.Star) {
	selectedID := l.selectedID()
	l.items = items
	l.applyFilter()
	l.selectByID(selectedID)
}

// SetSize sets the render area in cells
func (l *StarList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll(1)
}

// SetQuery filters the list as the user types
func (l *StarList) SetQuery(query string) {
	selectedID := l.selectedID()
	l.query = query
	l.applyFilter()
	l.selectByID(selectedID)
}

// Query returns the active filter query
func (l *StarList) Query() string { return l.query }

// ToggleSortByName switches between feed order and name order, keeping
// the selection on the same star. Returns the new setting.
func (l *StarList) ToggleSortByName() bool {
	selectedID := l.selectedID()
	l.sortByName = !l.sortByName
	l.applyFilter()
	l.selectByID(selectedID)
	return l.sortByName
}

// applyFilter recomputes the visible slice from items, query, and sort
// order
func (l *StarList) applyFilter() {
	visible := l.items

	if query := strings.TrimSpace(l.query); query != "" {
		lowerValues := make([]string, len(l.items))
		for i, s := range l.items {
			lowerValues[i] = strings.ToLower(s.FilterValue())
		}

		matches := fuzzy.Find(strings.ToLower(query), lowerValues)
		visible = make([]domain.Star, len(matches))
		for i, m := range matches {
			visible[i] = l.items[m.Index]
		}
	}

	if l.sortByName {
		// Sort a copy so the feed order survives toggling back.
		sorted := make([]domain.Star, len(visible))
		copy(sorted, visible)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SortTitle() < sorted[j].SortTitle()
		})
		visible = sorted
	}

	l.visible = visible
}

func (l *StarList) selectedID() string {
	if star, ok := l.Selected(); ok {
		return star.ID
	}
	return ""
}

func (l *StarList) selectByID(id string) {
	if id != "" {
		for i, s := range l.visible {
			if s.ID == id {
				l.cursor = i
				l.clampScroll(1)
				return
			}
		}
	}
	l.cursor = 0
	l.offset = 0
}

// SelectID moves the selection to the visible star with the given ID.
// The cursor stays put when the ID is not visible.
func (l *StarList) SelectID(id string) bool {
	for i, s := range l.visible {
		if s.ID == id {
			l.cursor = i
			l.clampScroll(1)
			return true
		}
	}
	return false
}

// Visible returns a copy of the items currently shown
func (l *StarList) Visible() []domain.Star {
	out := make([]domain.Star, len(l.visible))
	copy(out, l.visible)
	return out
}

// Selected returns the star under the cursor
func (l *StarList) Selected() (domain.Star, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return domain.Star{}, false
	}
	return l.visible[l.cursor], true
}

// Len returns the number of visible items
func (l *StarList) Len() int { return len(l.visible) }

// TotalLen returns the number of items before filtering
func (l *StarList) TotalLen() int { return len(l.items) }

// MoveUp moves the cursor up one row
func (l *StarList) MoveUp(rowsPerItem int) {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll(rowsPerItem)
}

// MoveDown moves the cursor down one row
func (l *StarList) MoveDown(rowsPerItem int) {
	if l.cursor < len(l.visible)-1 {
		l.cursor++
	}
	l.clampScroll(rowsPerItem)
}

// MoveTop jumps to the first item
func (l *StarList) MoveTop(rowsPerItem int) {
	l.cursor = 0
	l.clampScroll(rowsPerItem)
}

// MoveBottom jumps to the last item
func (l *StarList) MoveBottom(rowsPerItem int) {
	if len(l.visible) > 0 {
		l.cursor = len(l.visible) - 1
	}
	l.clampScroll(rowsPerItem)
}

// PageUp moves the cursor up one page
func (l *StarList) PageUp(rowsPerItem int) {
	l.cursor -= l.capacity(rowsPerItem)
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll(rowsPerItem)
}

// PageDown moves the cursor down one page
func (l *StarList) PageDown(rowsPerItem int) {
	l.cursor += l.capacity(rowsPerItem)
	if l.cursor > len(l.visible)-1 {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll(rowsPerItem)
}

// capacity returns how many items fit in the render area
func (l *StarList) capacity(rowsPerItem int) int {
	if rowsPerItem <= 0 {
		rowsPerItem = 1
	}
	cap := l.height / rowsPerItem
	if cap < 1 {
		cap = 1
	}
	return cap
}

// clampScroll keeps the cursor within the visible window
func (l *StarList) clampScroll(rowsPerItem int) {
	cap := l.capacity(rowsPerItem)
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+cap {
		l.offset = l.cursor - cap + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible window. Each item takes one row, or two
// when descriptions are shown.
func (l *StarList) View(showDescriptions bool) string {
	if len(l.visible) == 0 {
		if l.query != "" {
			return styles.DimStyle.Render(fmt.Sprintf("  no matches for %q", l.query))
		}
		return styles.DimStyle.Render("  0 stars")
	}

	rowsPerItem := 1
	if showDescriptions {
		rowsPerItem = 2
	}
	cap := l.capacity(rowsPerItem)

	end := l.offset + cap
	if end > len(l.visible) {
		end = len(l.visible)
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderItem(l.visible[i], i == l.cursor, showDescriptions))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderItem renders one star: the name as a link to its URL, with
// its description on the following row.
func (l *StarList) renderItem(star domain.Star, selected bool, showDescription bool) string {
	width := l.width
	if width <= 0 {
		width = 80
	}

	name := star.Name
	if name == "" {
		name = star.ID
	}

	nameStyle := styles.LinkStyle
	rowStyle := styles.NormalItemStyle
	if selected {
		nameStyle = nameStyle.Background(styles.SlateLight)
		rowStyle = styles.SelectedItemStyle
	}

	url := styles.Truncate(star.URL, width-len([]rune(name))-6)
	row := rowStyle.Render(nameStyle.Render(styles.Truncate(name, width-4))) +
		" " + styles.DimStyle.Render(url)

	if !showDescription {
		return row
	}

	desc := star.Description
	if desc == "" {
		desc = "—"
	}
	return row + "\n" + styles.DescriptionStyle.Render(styles.Truncate(desc, width-6))
}
