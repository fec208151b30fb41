package ui

import (
	"quicklaunch/internal/domain"
	"quicklaunch/internal/selection"
)

// signals sits between the selection machine and the real dispatcher and
// remembers what was emitted during the current update, so the model can
// decide whether the program should end.
type signals struct {
	next      selection.Dispatcher
	launched  bool
	dismissed bool
}

func (s *signals) Launch(entry domain.AppEntry) {
	s.launched = true
	if s.next != nil {
		s.next.Launch(entry)
	}
}

func (s *signals) Dismiss() {
	s.dismissed = true
	if s.next != nil {
		s.next.Dismiss()
	}
}

// take returns and clears the recorded signals
func (s *signals) take() (launched, dismissed bool) {
	launched, dismissed = s.launched, s.dismissed
	s.launched, s.dismissed = false, false
	return launched, dismissed
}
