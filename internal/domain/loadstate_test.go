package domain

import "testing"

func TestLoadStateInitialPhase(t *testing.T) {
	s := Loading()
	if s.Phase() != PhaseLoading {
		t.Fatalf("expected PhaseLoading, got %v", s.Phase())
	}
	if s.Terminal() {
		t.Error("fresh state should not be terminal")
	}
	if s.Stars() != nil {
		t.Error("stars must be absent before the fetch resolves")
	}
	if s.Message() != "" {
		t.Errorf("unexpected message %q", s.Message())
	}
}

func TestLoadStateSucceed(t *testing.T) {
	s := Loading()
	stars := []Star{{ID: "1", Name: "repoA", URL: "https://x/a", Description: "d1"}}

	s, ok := s.Succeed(stars)
	if !ok {
		t.Fatal("transition from Loading should be accepted")
	}
	if s.Phase() != PhaseSucceeded {
		t.Fatalf("expected PhaseSucceeded, got %v", s.Phase())
	}
	if got := s.Stars(); len(got) != 1 || got[0].Name != "repoA" {
		t.Errorf("unexpected stars %v", got)
	}
}

func TestLoadStateSucceedEmpty(t *testing.T) {
	s, _ := Loading().Succeed(nil)
	if s.Stars() == nil {
		t.Fatal("empty success must yield a non-nil slice")
	}
	if len(s.Stars()) != 0 {
		t.Errorf("expected zero stars, got %d", len(s.Stars()))
	}
}

func TestLoadStateFail(t *testing.T) {
	s, ok := Loading().Fail("connection refused")
	if !ok {
		t.Fatal("transition from Loading should be accepted")
	}
	if s.Phase() != PhaseFailed {
		t.Fatalf("expected PhaseFailed, got %v", s.Phase())
	}
	if s.Message() != "connection refused" {
		t.Errorf("unexpected message %q", s.Message())
	}
	if s.Stars() != nil {
		t.Error("failed state must not expose stars")
	}
}

func TestLoadStateFailEmptyMessage(t *testing.T) {
	s, _ := Loading().Fail("")
	if s.Message() == "" {
		t.Error("failure message must never be empty")
	}
}

func TestLoadStateTransitionsAreMonotonic(t *testing.T) {
	tests := []struct {
		name  string
		state func() LoadState
	}{
		{"after success", func() LoadState {
			s, _ := Loading().Succeed([]Star{{ID: "1"}})
			return s
		}},
		{"after failure", func() LoadState {
			s, _ := Loading().Fail("boom")
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state()
			before := s.Phase()

			if next, ok := s.Fail("late error"); ok || next.Phase() != before {
				t.Error("Fail after terminal phase must be rejected")
			}
			if next, ok := s.Succeed(nil); ok || next.Phase() != before {
				t.Error("Succeed after terminal phase must be rejected")
			}
		})
	}
}
