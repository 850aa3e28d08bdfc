package coordinator

import (
	"fmt"
	"sync"
	"time"
)

const (
	dropDebounceWindow  = 200 * time.Millisecond
	dropEventIDTTL      = 5 * time.Second
	dropCleanupInterval = 5 * time.Second
)

// dropDeduplicator suppresses a drop delivered twice. Events carrying an id
// are matched by id; all events are also matched by content within a short
// window so a double-fired handler without ids is caught too.
type dropDeduplicator struct {
	mu          sync.Mutex
	now         func() time.Time
	eventIDs    map[string]time.Time
	recent      map[string]time.Time
	lastCleanup time.Time
}

func newDropDeduplicator(now func() time.Time) *dropDeduplicator {
	return &dropDeduplicator{
		now:         now,
		eventIDs:    make(map[string]time.Time),
		recent:      make(map[string]time.Time),
		lastCleanup: now(),
	}
}

func dropFingerprint(ev DropEvent) string {
	return fmt.Sprintf("%s|%s|%s|%s", ev.TargetPaneID, ev.DraggedTerminalID, ev.DraggedTabID, ev.Position)
}

// seen records ev and reports whether it was already handled, with a reason.
func (d *dropDeduplicator) seen(ev DropEvent) (bool, string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if now.Sub(d.lastCleanup) > dropCleanupInterval {
		d.cleanup(now)
	}

	if ev.EventID != "" {
		if _, ok := d.eventIDs[ev.EventID]; ok {
			return true, "duplicate event id"
		}
	}

	fp := dropFingerprint(ev)
	if at, ok := d.recent[fp]; ok && now.Sub(at) < dropDebounceWindow {
		return true, "duplicate drop within debounce window"
	}

	d.recent[fp] = now
	if ev.EventID != "" {
		d.eventIDs[ev.EventID] = now
	}
	return false, ""
}

// release forgets ev so a drop that failed can be delivered again.
func (d *dropDeduplicator) release(ev DropEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.recent, dropFingerprint(ev))
	if ev.EventID != "" {
		delete(d.eventIDs, ev.EventID)
	}
}

func (d *dropDeduplicator) cleanup(now time.Time) {
	for fp, at := range d.recent {
		if now.Sub(at) > dropDebounceWindow {
			delete(d.recent, fp)
		}
	}
	for id, at := range d.eventIDs {
		if now.Sub(at) > dropEventIDTTL {
			delete(d.eventIDs, id)
		}
	}
	d.lastCleanup = now
}
