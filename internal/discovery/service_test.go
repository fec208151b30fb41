package discovery

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicklaunch/internal/eventbus"
)

func catalogEvents(rec *eventbus.Recorder) []eventbus.CatalogDiscoveredEvent {
	var out []eventbus.CatalogDiscoveredEvent
	for _, e := range rec.OfType(eventbus.EventCatalogDiscovered) {
		out = append(out, e.(eventbus.CatalogDiscoveredEvent))
	}
	return out
}

func TestServiceDeliversCatalog(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Foo.lnk"))
	touch(t, filepath.Join(dir, "Bar.lnk"))

	rec := eventbus.NewRecorder()
	svc := NewService(rec, lnkOptions(dir))

	gen := svc.StartScan(context.Background(), nil)
	svc.Wait()

	started := rec.OfType(eventbus.EventScanStarted)
	require.Len(t, started, 1)
	startEvent := started[0].(eventbus.ScanStartedEvent)
	assert.Equal(t, gen, startEvent.Generation)
	assert.Equal(t, []string{dir}, startEvent.Dirs)
	assert.NotEmpty(t, startEvent.ScanID)

	events := catalogEvents(rec)
	require.Len(t, events, 1)
	assert.Equal(t, startEvent.ScanID, events[0].ScanID)
	assert.Equal(t, gen, events[0].Generation)
	assert.Equal(t, []string{"Bar", "Foo"}, events[0].Catalog.Names())
}

func TestServiceSupersedesInFlightScan(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	touch(t, filepath.Join(first, "Old.lnk"))
	touch(t, filepath.Join(second, "New.lnk"))

	rec := eventbus.NewRecorder()
	svc := NewService(rec, lnkOptions(first))

	svc.StartScan(context.Background(), nil)
	latest := svc.StartScan(context.Background(), []string{second})
	svc.Wait()

	events := catalogEvents(rec)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, latest, last.Generation)
	assert.Equal(t, []string{"New"}, last.Catalog.Names())

	// Every scan either delivered or was abandoned, never both.
	abandoned := rec.OfType(eventbus.EventScanAbandoned)
	assert.Equal(t, 2, len(events)+len(abandoned))
}

func TestServiceStopScanDropsResult(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Foo.lnk"))

	rec := eventbus.NewRecorder()
	svc := NewService(rec, lnkOptions(dir))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.StartScan(ctx, nil)
	svc.StopScan()

	assert.Empty(t, catalogEvents(rec))
	assert.Len(t, rec.OfType(eventbus.EventScanAbandoned), 1)
}

func TestServiceRespondsToScanRequests(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Foo.lnk"))

	rec := eventbus.NewRecorder()
	svc := NewService(rec, lnkOptions())

	rec.Publish(eventbus.ScanRequestedEvent{Dirs: []string{dir}})
	svc.Wait()

	events := catalogEvents(rec)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"Foo"}, events[0].Catalog.Names())
}
