package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanRequested     EventType = "ScanRequested"
	EventScanStarted       EventType = "ScanStarted"
	EventCatalogDiscovered EventType = "CatalogDiscovered"
	EventScanAbandoned     EventType = "ScanAbandoned"
	EventAppLaunched       EventType = "AppLaunched"
	EventLaunchFailed      EventType = "LaunchFailed"
	EventDismissRequested  EventType = "DismissRequested"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanRequestedEvent asks the scanner for a fresh catalog
type ScanRequestedEvent struct {
	Dirs []string // Empty means the configured base directories
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ScanStartedEvent is emitted when a scan begins
type ScanStartedEvent struct {
	ScanID     string
	Generation uint64
	Dirs       []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// CatalogDiscoveredEvent carries the catalog of a scan that was still current when it finished
type CatalogDiscoveredEvent struct {
	ScanID     string
	Generation uint64 // increases with every started scan
	Catalog    Catalog
}

func (e CatalogDiscoveredEvent) Type() EventType { return EventCatalogDiscovered }

// ScanAbandonedEvent is emitted when a scan was superseded or stopped before delivery
type ScanAbandonedEvent struct {
	ScanID     string
	Generation uint64
}

func (e ScanAbandonedEvent) Type() EventType { return EventScanAbandoned }

// AppLaunchedEvent is emitted after an entry was handed to the OS opener
type AppLaunchedEvent struct {
	Entry AppEntry
}

func (e AppLaunchedEvent) Type() EventType { return EventAppLaunched }

// LaunchFailedEvent is emitted when the OS opener reported an error
type LaunchFailedEvent struct {
	Entry AppEntry
	Err   error
}

func (e LaunchFailedEvent) Type() EventType { return EventLaunchFailed }

// DismissRequestedEvent is emitted when the user cancels the launcher
type DismissRequestedEvent struct{}

func (e DismissRequestedEvent) Type() EventType { return EventDismissRequested }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
