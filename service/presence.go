package service

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PresenceTracker owns the process-wide map of which players this process
// considers online. The map only exists to make repeated login notifications
// idempotent; the players_online relation is the source of truth for other
// processes. Constructed once at startup and injected, never a package
// global; the map resets with the process.
type PresenceTracker struct {
	mu     sync.Mutex
	online map[uint32]bool

	store  PresenceStore
	gauge  prometheus.Gauge
	logger LoggerInterface
}

func NewPresenceTracker(store PresenceStore, gauge prometheus.Gauge, logger LoggerInterface) *PresenceTracker {
	return &PresenceTracker{
		online: make(map[uint32]bool),
		store:  store,
		gauge:  gauge,
		logger: logger,
	}
}

// SetOnline updates the gauge, the persisted relation and the cache. A login
// for a player already marked online is a no-op so duplicate login events
// cannot double-count; a logout is always processed.
func (t *PresenceTracker) SetOnline(guid uint32, online bool) {
	if guid == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if online {
		if t.online[guid] {
			return
		}
		t.gauge.Inc()
		if err := t.store.InsertOnlinePlayer(guid); err != nil {
			t.logger.Exception(fmt.Sprintf("SetOnline(): %v", err))
		}
		t.online[guid] = true
		return
	}

	t.gauge.Dec()
	if err := t.store.DeleteOnlinePlayer(guid); err != nil {
		t.logger.Exception(fmt.Sprintf("SetOnline(): %v", err))
	}
	delete(t.online, guid)
}

// IsOnline answers from the cache only; it reflects logins seen by this
// process, not the relation.
func (t *PresenceTracker) IsOnline(guid uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.online[guid]
}

// OnlineCount reads the persisted relation, not the cache.
func (t *PresenceTracker) OnlineCount() int {
	count, err := t.store.OnlineCount()
	if err != nil {
		t.logger.Exception(fmt.Sprintf("OnlineCount(): %v", err))
		return 0
	}
	return count
}
