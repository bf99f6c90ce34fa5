package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stargaze/internal/audit"
	"stargaze/internal/browser"
	"stargaze/internal/domain"
	"stargaze/internal/service"
)

const loadTimeout = 30 * time.Second

// Command factories for async operations

// LoadStarsCmd loads the star list, serving the cache when fresh. The
// parent context is cancelled when the program quits so an unmount
// during an outstanding request aborts it.
func LoadStarsCmd(parent context.Context, svc *service.StarService, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, loadTimeout)
		defer cancel()

		stars, err := svc.GetStars(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading stars", Seq: seq}
		}
		return StarsLoadedMsg{Stars: stars, Seq: seq}
	}
}

// RefreshStarsCmd bypasses the cache and fetches from the backend
func RefreshStarsCmd(parent context.Context, svc *service.StarService, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, loadTimeout)
		defer cancel()

		stars, err := svc.Refresh(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "refreshing stars", Seq: seq}
		}
		return StarsLoadedMsg{Stars: stars, Seq: seq}
	}
}

// OpenLinkCmd opens the star's URL in the system browser
func OpenLinkCmd(launcher *browser.Launcher, star domain.Star) tea.Cmd {
	return func() tea.Msg {
		if err := launcher.Open(star.URL); err != nil {
			return StatusMsg{Message: err.Error(), IsError: true}
		}
		return LinkOpenedMsg{Name: star.Name}
	}
}

// AuditCmd runs the development render audit over the loaded list
func AuditCmd(auditor *audit.Auditor, stars []domain.Star) tea.Cmd {
	return func() tea.Msg {
		rows := make([]audit.Row, len(stars))
		for i, s := range stars {
			rows[i] = audit.Row{ID: s.ID, Name: s.Name, URL: s.URL}
		}
		findings := auditor.AuditRows(rows)
		return AuditCompletedMsg{Findings: len(findings)}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
