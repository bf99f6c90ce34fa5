package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stargaze/internal/domain"
	"stargaze/internal/tui/styles"
)

// View renders the application. The three load outcomes are handled in
// strict precedence order: a failure always wins, then the placeholder
// while unresolved, then the list.
func (m Model) View() string {
	if !m.Ready {
		return ""
	}

	var body string
	switch {
	case m.State.Phase() == domain.PhaseFailed:
		body = m.errorView()
	case m.State.Phase() == domain.PhaseLoading:
		body = m.loadingView()
	default:
		body = m.listView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.statusView(),
		m.Help.View(m.Keys),
	)
}

// headerView renders the title bar
func (m Model) headerView() string {
	title := styles.HeaderStyle.Render("✦ stargaze")

	var right string
	if m.State.Phase() == domain.PhaseSucceeded {
		count := fmt.Sprintf("%d stars", m.List.TotalLen())
		if m.List.Query() != "" {
			count = fmt.Sprintf("%d/%d stars", m.List.Len(), m.List.TotalLen())
		}
		if m.FromCache {
			count += " (cached)"
		}
		right = styles.DimStyle.Render(count)
	}

	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

// loadingView renders the neutral placeholder shown until the fetch
// resolves
func (m Model) loadingView() string {
	content := fmt.Sprintf("%s Loading…", m.Spinner.View())
	return m.centered(styles.SubtitleStyle.Render(content))
}

// errorView renders the failure's description in place of content. When
// an earlier run left a saved copy behind, it offers offline browsing.
func (m Model) errorView() string {
	msg := styles.ErrorStyle.Render(m.State.Message())

	hint := "press r to retry, q to quit"
	if cached := m.StarSvc.CachedStars(); len(cached) > 0 {
		hint = fmt.Sprintf("press r to retry, c to browse the cached copy (%d stars), q to quit", len(cached))
	}

	box := styles.ErrorBoxStyle.Render(
		styles.TitleStyle.Render("Could not load stars") + "\n\n" +
			msg + "\n\n" +
			styles.DimStyle.Render(hint),
	)
	return m.centered(box)
}

// listView renders the loaded list, including the empty-but-loaded
// frame when the feed has zero items
func (m Model) listView() string {
	listBody := m.List.View(m.ShowDescriptions)

	height := m.Height - ChromeHeight
	if m.Input != InputNone {
		height--
	}
	listBody = lipgloss.NewStyle().Height(height).Render(listBody)

	if m.Input != InputNone {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.FilterPromptStyle.Render(m.Filter.View()),
			listBody,
		)
	}
	return listBody
}

// statusView renders the transient status bar line
func (m Model) statusView() string {
	if m.StatusMsg == "" {
		return styles.StatusStyle.Render(" ")
	}
	if m.StatusIsErr {
		return styles.StatusErrStyle.Render(m.StatusMsg)
	}
	return styles.StatusStyle.Render(m.StatusMsg)
}

// centered places content in the middle of the body area
func (m Model) centered(content string) string {
	return lipgloss.Place(
		m.Width,
		m.Height-ChromeHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
