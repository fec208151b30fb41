package launch

import (
	"log"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/eventbus"
)

// Service is the launch boundary. It forwards launch requests to an Opener and
// reports outcomes on the event bus; nothing flows back into the caller.
type Service struct {
	opener Opener
	bus    eventbus.EventBus
}

// NewService creates a launch service
func NewService(opener Opener, bus eventbus.EventBus) *Service {
	return &Service{opener: opener, bus: bus}
}

// Launch opens entry.Path. Failures are logged and published, never returned.
func (s *Service) Launch(entry domain.AppEntry) {
	log.Printf("Launching %s (%s)", entry.Name, entry.Path)
	if err := s.opener.Open(entry.Path); err != nil {
		log.Printf("Launch of %s failed: %v", entry.Name, err)
		s.bus.Publish(eventbus.LaunchFailedEvent{Entry: entry, Err: err})
		return
	}
	s.bus.Publish(eventbus.AppLaunchedEvent{Entry: entry})
}

// Dismiss publishes the hide signal
func (s *Service) Dismiss() {
	s.bus.Publish(eventbus.DismissRequestedEvent{})
}
