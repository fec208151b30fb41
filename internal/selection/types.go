package selection

import (
	"fmt"

	"quicklaunch/internal/domain"
)

// Action is one of the discrete inputs the machine reacts to
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionActivate
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionActivate:
		return "activate"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Policy decides what a query edit does to the selection
type Policy string

const (
	// PolicyPersist keeps the index and only clamps it to the new view
	PolicyPersist Policy = "persist"
	// PolicyReset moves the selection back to the top on every query edit
	PolicyReset Policy = "reset"
)

// ParsePolicy converts a configuration value into a Policy
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyPersist, PolicyReset:
		return p, nil
	case "":
		return PolicyPersist, nil
	default:
		return "", fmt.Errorf("unknown selection policy %q (want %q or %q)", s, PolicyPersist, PolicyReset)
	}
}

// Dispatcher receives the machine's outgoing signals.
// Both calls are fire-and-forget.
type Dispatcher interface {
	Launch(entry domain.AppEntry)
	Dismiss()
}
