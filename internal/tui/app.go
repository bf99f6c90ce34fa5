package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stargaze/internal/audit"
	"stargaze/internal/browser"
	"stargaze/internal/domain"
	"stargaze/internal/search"
	"stargaze/internal/service"
	"stargaze/internal/tui/styles"
)

// InputMode says which affordance owns typed keys while the shared
// text input is focused.
type InputMode int

const (
	InputNone   InputMode = iota
	InputFilter           // narrows the list as the user types
	InputJump             // jumps to the best-ranked match on enter
)

const statusDisplayDuration = 3 * time.Second

// ChromeHeight is the number of rows reserved for header, status bar,
// and help line.
const ChromeHeight = 3

// Model is the main Bubble Tea model for the application
type Model struct {
	// Load state drives which of the three views renders. It is reset
	// to Loading only when a new load cycle starts.
	State domain.LoadState

	// Services
	StarSvc  *service.StarService
	Launcher *browser.Launcher
	Auditor  *audit.Auditor // nil outside development mode

	// UI components
	List    StarList
	Filter  textinput.Model
	Spinner spinner.Model
	Keys    KeyMap
	Help    help.Model

	// UI state
	Input            InputMode
	FromCache        bool // the shown list came from the saved copy
	ShowDescriptions bool
	StatusMsg        string
	StatusIsErr      bool
	Ready            bool
	Width            int
	Height           int

	// loadSeq identifies the active load cycle; results carrying an
	// older sequence are dropped so resolved cycles stay resolved.
	loadSeq int

	// lifetime is cancelled on quit, aborting any outstanding request
	lifetime context.Context
	cancel   context.CancelFunc
}

// NewModel creates a new application model
func NewModel(starSvc *service.StarService, launcher *browser.Launcher, auditor *audit.Auditor, showDescriptions bool) Model {
	filter := textinput.New()
	filter.Placeholder = "filter stars"
	filter.Prompt = "/"
	filter.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.StarYellow)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		State:            domain.Loading(),
		StarSvc:          starSvc,
		Launcher:         launcher,
		Auditor:          auditor,
		List:             NewStarList(),
		Filter:           filter,
		Spinner:          sp,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		ShowDescriptions: showDescriptions,
		lifetime:         ctx,
		cancel:           cancel,
	}
}

// Init issues the single load for this mount
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadStarsCmd(m.lifetime, m.StarSvc, m.loadSeq),
		m.Spinner.Tick,
	)
}

// rowsPerItem returns how many rows each list item occupies
func (m Model) rowsPerItem() int {
	if m.ShowDescriptions {
		return 2
	}
	return 1
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Help.Width = msg.Width
		m.List.SetSize(msg.Width, msg.Height-ChromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.State.Phase() != domain.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case StarsLoadedMsg:
		if msg.Seq != m.loadSeq {
			// Stale result from an abandoned cycle
			return m, nil
		}
		next, ok := m.State.Succeed(msg.Stars)
		if !ok {
			return m, nil
		}
		m.State = next
		m.FromCache = false
		m.List.SetItems(next.Stars())

		if m.Auditor != nil {
			return m, AuditCmd(m.Auditor, next.Stars())
		}
		return m, nil

	case ErrMsg:
		if msg.Seq != m.loadSeq {
			return m, nil
		}
		next, ok := m.State.Fail(msg.Error())
		if !ok {
			return m, nil
		}
		m.State = next
		return m, nil

	case LinkOpenedMsg:
		m.StatusMsg = fmt.Sprintf("opened %s", msg.Name)
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusDisplayDuration)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusDisplayDuration)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case AuditCompletedMsg:
		if msg.Findings > 0 {
			m.StatusMsg = fmt.Sprintf("render audit: %d finding(s), see log", msg.Findings)
			m.StatusIsErr = false
			return m, ClearStatusCmd(statusDisplayDuration)
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Input != InputNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Refresh):
		return m.startRefresh()

	case key.Matches(msg, m.Keys.ClearFilter):
		if m.List.Query() != "" {
			m.Filter.SetValue("")
			m.List.SetQuery("")
		}
		return m, nil

	case key.Matches(msg, m.Keys.BrowseCached):
		return m.browseCached()
	}

	// Remaining bindings only make sense once the list is shown
	if m.State.Phase() != domain.PhaseSucceeded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.List.MoveUp(m.rowsPerItem())
	case key.Matches(msg, m.Keys.Down):
		m.List.MoveDown(m.rowsPerItem())
	case key.Matches(msg, m.Keys.Top):
		m.List.MoveTop(m.rowsPerItem())
	case key.Matches(msg, m.Keys.Bottom):
		m.List.MoveBottom(m.rowsPerItem())
	case key.Matches(msg, m.Keys.PageUp):
		m.List.PageUp(m.rowsPerItem())
	case key.Matches(msg, m.Keys.PageDown):
		m.List.PageDown(m.rowsPerItem())

	case key.Matches(msg, m.Keys.Filter):
		m.Input = InputFilter
		m.Filter.Prompt = "/"
		m.Filter.Placeholder = "filter stars"
		m.Filter.SetValue(m.List.Query())
		m.Filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Jump):
		m.Input = InputJump
		m.Filter.Prompt = "⌕ "
		m.Filter.Placeholder = "jump to star"
		m.Filter.SetValue("")
		m.Filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Sort):
		if m.List.ToggleSortByName() {
			m.StatusMsg = "sorted by name"
		} else {
			m.StatusMsg = "feed order"
		}
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusDisplayDuration)

	case key.Matches(msg, m.Keys.Descriptions):
		m.ShowDescriptions = !m.ShowDescriptions
		m.List.clampScroll(m.rowsPerItem())

	case key.Matches(msg, m.Keys.Open):
		if star, ok := m.List.Selected(); ok {
			return m, OpenLinkCmd(m.Launcher, star)
		}
	}

	return m, nil
}

// startRefresh begins a fresh load cycle: the previous cycle's result
// becomes stale and the state machine restarts from Loading.
func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	m.loadSeq++
	m.State = domain.Loading()
	return m, tea.Batch(
		RefreshStarsCmd(m.lifetime, m.StarSvc, m.loadSeq),
		m.Spinner.Tick,
	)
}

// handleInputKey routes keys while the shared text input is focused
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ClearFilter):
		mode := m.Input
		m.Input = InputNone
		m.Filter.Blur()
		m.Filter.SetValue("")
		if mode == InputFilter {
			m.List.SetQuery("")
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		mode := m.Input
		query := m.Filter.Value()
		m.Input = InputNone
		m.Filter.Blur()
		if mode == InputJump {
			m.Filter.SetValue("")
			return m.jumpToMatch(query)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	if m.Input == InputFilter {
		m.List.SetQuery(m.Filter.Value())
	}
	return m, cmd
}

// jumpToMatch moves the selection to the best-ranked fuzzy match among
// the visible stars, leaving the list itself un-narrowed.
func (m Model) jumpToMatch(query string) (tea.Model, tea.Cmd) {
	star, ok := search.Best(query, m.List.Visible())
	if !ok {
		m.StatusMsg = fmt.Sprintf("no match for %q", query)
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusDisplayDuration)
	}
	m.List.SelectID(star.ID)
	return m, nil
}

// browseCached resolves a fresh cycle immediately from the saved copy.
// Only reachable from the failed view, and only when a copy exists;
// the failed cycle itself always renders the error view first.
func (m Model) browseCached() (tea.Model, tea.Cmd) {
	if m.State.Phase() != domain.PhaseFailed {
		return m, nil
	}
	cached := m.StarSvc.CachedStars()
	if len(cached) == 0 {
		return m, nil
	}

	m.loadSeq++
	next, _ := domain.Loading().Succeed(cached)
	m.State = next
	m.FromCache = true
	m.List.SetItems(next.Stars())

	m.StatusMsg = "offline: showing the cached copy"
	m.StatusIsErr = true
	return m, ClearStatusCmd(statusDisplayDuration)
}
