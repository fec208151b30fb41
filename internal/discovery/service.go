package discovery

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"quicklaunch/internal/eventbus"
)

// Service runs scans in the background and delivers catalogs over the event bus.
// Starting a scan supersedes any scan still in flight; a superseded scan's
// catalog is dropped, never delivered.
type Service struct {
	bus  eventbus.EventBus
	opts Options

	mu         sync.Mutex
	generation uint64
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewService creates a scanner that uses opts for every scan.
// It subscribes to scan requests on the bus.
func NewService(bus eventbus.EventBus, opts Options) *Service {
	s := &Service{
		bus:  bus,
		opts: opts,
	}

	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			s.StartScan(context.Background(), event.Dirs)
		}
	})

	return s
}

// StartScan starts a scan of dirs (the configured base directories when empty)
// and returns its generation.
func (s *Service) StartScan(ctx context.Context, dirs []string) uint64 {
	if len(dirs) == 0 {
		dirs = s.opts.BaseDirs
	}

	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	scanCtx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	scanID := uuid.NewString()
	s.bus.Publish(eventbus.ScanStartedEvent{ScanID: scanID, Generation: gen, Dirs: dirs})
	log.Printf("Scan %s (generation %d) started over %d directories", scanID, gen, len(dirs))

	opts := s.opts
	opts.BaseDirs = dirs

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		catalog := Discover(scanCtx, opts)

		// Publish under the lock so a newer scan cannot be superseded by this one.
		s.mu.Lock()
		defer s.mu.Unlock()

		if gen != s.generation || scanCtx.Err() != nil {
			log.Printf("Scan %s abandoned", scanID)
			s.bus.Publish(eventbus.ScanAbandonedEvent{ScanID: scanID, Generation: gen})
			return
		}

		s.cancelFunc = nil
		log.Printf("Scan %s found %d applications", scanID, len(catalog))
		s.bus.Publish(eventbus.CatalogDiscoveredEvent{ScanID: scanID, Generation: gen, Catalog: catalog})
	}()

	return gen
}

// StopScan cancels any scan in flight and waits for it to finish
func (s *Service) StopScan() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Wait blocks until every started scan has finished
func (s *Service) Wait() {
	s.wg.Wait()
}
