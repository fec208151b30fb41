package ui

import (
	"quicklaunch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ForwardedEvents lists the event types the UI reacts to
var ForwardedEvents = []eventbus.EventType{
	eventbus.EventScanStarted,
	eventbus.EventCatalogDiscovered,
	eventbus.EventScanAbandoned,
	eventbus.EventAppLaunched,
	eventbus.EventLaunchFailed,
	eventbus.EventError,
}
