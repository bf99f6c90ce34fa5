package domain

// Phase identifies which of the three mutually exclusive load outcomes
// is active.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseSucceeded
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// LoadState is the tagged outcome of a single load cycle. Exactly one
// variant is active at any time. Transitions are one-directional:
// Loading moves to Failed or Succeeded, and both are terminal for the
// cycle; a new cycle starts from a fresh Loading() value.
//
// Stars are absent until the fetch resolves successfully, then fully
// present: there is no partially populated state.
type LoadState struct {
	phase   Phase
	message string
	stars   []Star
}

// Loading returns the initial state of a load cycle.
func Loading() LoadState {
	return LoadState{phase: PhaseLoading}
}

// Succeed transitions to PhaseSucceeded. The second return is false if
// the state was already terminal, in which case the receiver is
// returned unchanged.
func (s LoadState) Succeed(stars []Star) (LoadState, bool) {
	if s.Terminal() {
		return s, false
	}
	return LoadState{phase: PhaseSucceeded, stars: stars}, true
}

// Fail transitions to PhaseFailed with the failure's description. The
// second return is false if the state was already terminal.
func (s LoadState) Fail(message string) (LoadState, bool) {
	if s.Terminal() {
		return s, false
	}
	if message == "" {
		message = "load failed"
	}
	return LoadState{phase: PhaseFailed, message: message}, true
}

// Phase returns the active variant.
func (s LoadState) Phase() Phase { return s.phase }

// Terminal reports whether the cycle has resolved.
func (s LoadState) Terminal() bool { return s.phase != PhaseLoading }

// Message returns the failure description. Empty unless PhaseFailed.
func (s LoadState) Message() string { return s.message }

// Stars returns the loaded items in backend order. Nil unless
// PhaseSucceeded; a successful empty response yields a non-nil empty
// slice so callers can distinguish "loaded nothing" from "not loaded".
func (s LoadState) Stars() []Star {
	if s.phase != PhaseSucceeded {
		return nil
	}
	if s.stars == nil {
		return []Star{}
	}
	return s.stars
}
