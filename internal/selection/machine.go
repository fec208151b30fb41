package selection

import "quicklaunch/internal/domain"

// Machine holds the selection index over the current filtered view.
// Whenever n > 0 the index is in [0, n); when n == 0 it is never read.
// It is not safe for concurrent use.
type Machine struct {
	index  int
	n      int
	policy Policy
	out    Dispatcher
}

// New creates a machine over an empty view
func New(policy Policy, out Dispatcher) *Machine {
	if policy == "" {
		policy = PolicyPersist
	}
	return &Machine{policy: policy, out: out}
}

// Index returns the selection index. Only meaningful when Len() > 0.
func (m *Machine) Index() int {
	return m.index
}

// Len returns the length of the view the machine was last clamped to
func (m *Machine) Len() int {
	return m.n
}

// Policy returns the query-change policy
func (m *Machine) Policy() Policy {
	return m.policy
}

// Selected returns the selected entry of view, if any
func (m *Machine) Selected(view domain.FilteredView) (domain.AppEntry, bool) {
	if len(view) == 0 {
		return domain.AppEntry{}, false
	}
	return view.At(m.index)
}

// MoveDown advances the selection; it does not wrap.
func (m *Machine) MoveDown() {
	if m.index+1 < m.n {
		m.index++
	}
}

// MoveUp moves the selection back; it saturates at 0.
func (m *Machine) MoveUp() {
	if m.index > 0 {
		m.index--
	}
}

// Clamp records the new view length and pulls the index back into range
func (m *Machine) Clamp(n int) {
	if n < 0 {
		n = 0
	}
	m.n = n
	if n > 0 && m.index >= n {
		m.index = n - 1
	}
}

// QueryChanged applies the policy after the view was recomputed for a new query
func (m *Machine) QueryChanged(n int) {
	if m.policy == PolicyReset {
		m.index = 0
	}
	m.Clamp(n)
}

// Activate asks the dispatcher to launch the selected entry.
// Nothing is emitted for an empty view.
func (m *Machine) Activate(view domain.FilteredView) {
	m.Clamp(len(view))
	entry, ok := m.Selected(view)
	if !ok || m.out == nil {
		return
	}
	m.out.Launch(entry)
}

// Cancel asks the dispatcher to dismiss the launcher. State is untouched.
func (m *Machine) Cancel() {
	if m.out != nil {
		m.out.Dismiss()
	}
}

// Apply runs the transition for action against the current view
func (m *Machine) Apply(action Action, view domain.FilteredView) {
	switch action {
	case ActionMoveUp:
		m.MoveUp()
	case ActionMoveDown:
		m.MoveDown()
	case ActionActivate:
		m.Activate(view)
	case ActionCancel:
		m.Cancel()
	}
}
